// font deals with font descriptors and font parsing.
//
// A [Desc] describes the font a title renderer wants (family, slant,
// weight) without naming a concrete file; [Desc.Resolve]() turns it
// into a parsed [sfnt.Font], going through the system font database
// first and falling back to an embedded face when the host has
// nothing suitable installed.
package font
