// rast implements the font backend for title rendering: it turns a
// font descriptor into a loadable font handle and answers glyph,
// metrics and kerning queries at a configurable device pixel ratio.
//
// The [Rasterizer] interface is the narrow contract consumed by
// renderers; [DefaultRasterizer] is the production implementation,
// built on sfnt font parsing and vector outline rasterization.
package rast
