package rast

import "errors"

import "github.com/csdtk/titletext/fract"
import "github.com/csdtk/titletext/font"
import "github.com/csdtk/titletext/internal"

// A rasterized glyph with bearings, dimensions, advance and a tagged
// pixel buffer. See the internal package for field documentation.
type Glyph = internal.Glyph

// A raw glyph pixel buffer tagged with its format.
type BitmapBuffer = internal.BitmapBuffer

// Pixel formats for glyph raster buffers.
type PixelFormat = internal.PixelFormat

const (
	FormatRGB  = internal.FormatRGB
	FormatRGBA = internal.FormatRGBA
)

// A handle to a font previously loaded into a [Rasterizer]. Handles
// are only meaningful for the rasterizer that created them.
type FontKey uint32

// Identifies one glyph: a font handle, a character and a nominal size.
// The device pixel ratio is not part of the key; it is rasterizer-wide
// state (see [Rasterizer.SetDevicePixelRatio]).
type GlyphKey struct {
	Font FontKey
	Char rune
	Size fract.Unit
}

// Line metrics for a font at a given size, in device pixels.
type Metrics struct {
	// Vertical distance between consecutive baselines.
	LineHeight float64

	// Distance from the baseline to the typographic top, positive.
	Ascent float64

	// Distance from the baseline to the typographic bottom. Negative,
	// as it extends below the baseline.
	Descent float64
}

// Returned by [Rasterizer.GetGlyph] when the font has no glyph for
// the requested character.
var ErrGlyphMissing = errors.New("font has no glyph for the requested character")

// Returned when a [FontKey] doesn't belong to the rasterizer it is
// used with.
var ErrInvalidFontKey = errors.New("invalid font key")

// The font backend contract consumed by title renderers. A Rasterizer
// owns scale-dependent state mutated in place by SetDevicePixelRatio,
// so instances must not be shared between renderers without external
// synchronization.
//
// [DefaultRasterizer] is the production implementation.
type Rasterizer interface {
	// Resolves and loads the described font at the given nominal
	// size, returning a handle for later queries. The size is part
	// of the contract for backends with size-specific faces, even
	// though scalable-font backends may ignore it at load time.
	LoadFont(desc *font.Desc, size fract.Unit) (FontKey, error)

	// Rasterizes the glyph identified by the given key at the current
	// device pixel ratio. Characters without a glyph in the font
	// return [ErrGlyphMissing].
	GetGlyph(key GlyphKey) (*Glyph, error)

	// Returns the line metrics for the given font at the given
	// nominal size, scaled by the current device pixel ratio.
	Metrics(fontKey FontKey, size fract.Unit) (Metrics, error)

	// Returns the kerning adjustment between two glyphs, in device
	// pixels. Pairs without kerning data yield (0, 0); the vertical
	// value is always zero for horizontal text.
	Kerning(left, right GlyphKey) (x, y int)

	// Reconfigures the rasterizer-wide device pixel ratio. This
	// affects every subsequent glyph, metrics and kerning query.
	SetDevicePixelRatio(dpr float64)
}
