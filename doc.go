// titletext renders a short line of text (a window or tab title) into
// an in-memory RGBA bitmap, ready to be composited into a titlebar or
// tab strip by the host UI.
//
// The package owns the full pipeline from a font description to shaped,
// kerned, alpha-blended pixels, and caches the result until one of its
// inputs changes:
//
//	title, err := titletext.New(color.RGBA{255, 255, 255, 255})
//	if err != nil { ... }
//	title.SetTitle("document.txt — editor")
//	title.SetScale(2) // e.g. on a HiDPI output
//	pixmap := title.Pixmap() // nil while the title is empty
//
// Mutators compare against the current value and only re-render on a
// genuine change, so callers can forward window state unconditionally.
// Reading the bitmap never triggers rendering.
//
// Complex script shaping, multi-line layout, wrapping and font
// fallback chains are out of scope; titles use a single configured
// sans-serif face.
package titletext
