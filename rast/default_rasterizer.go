package rast

import "math"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/csdtk/titletext/cache"
import "github.com/csdtk/titletext/fract"
import fontpkg "github.com/csdtk/titletext/font"
import "github.com/csdtk/titletext/internal"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The production [Rasterizer]: sfnt font handles, glyph outlines
// rasterized through [golang.org/x/image/vector].
//
// DefaultRasterizers can't be used concurrently.
type DefaultRasterizer struct {
	fonts []*sfnt.Font
	buffer sfnt.Buffer
	tracer glyphTracer
	dpr float64
	maskFormat internal.PixelFormat
	glyphCache *cache.DefaultCache
}

// Creates a new [DefaultRasterizer] with a device pixel ratio of 1
// and [FormatRGBA] raster output. No glyph cache is set by default;
// see [DefaultRasterizer.SetCache]().
func NewDefaultRasterizer() *DefaultRasterizer {
	return &DefaultRasterizer { dpr: 1.0, maskFormat: internal.FormatRGBA }
}

// Sets the glyph cache used by the rasterizer. A nil cache disables
// caching. The cache doesn't need any invalidation on configuration
// changes: keys embed the device pixel ratio and the raster format.
func (self *DefaultRasterizer) SetCache(glyphCache *cache.DefaultCache) {
	self.glyphCache = glyphCache
}

// Sets the pixel format of the raster buffers produced by
// [DefaultRasterizer.GetGlyph](). [FormatRGBA] (the default) carries
// coverage in the alpha channel; [FormatRGB] bakes it into the color
// channels as a luminance mask.
func (self *DefaultRasterizer) SetMaskFormat(format PixelFormat) {
	if format != internal.FormatRGB && format != internal.FormatRGBA {
		panic("invalid mask format")
	}
	self.maskFormat = format
}

// Registers an already parsed font with the rasterizer and returns
// its handle. Nil fonts will panic.
func (self *DefaultRasterizer) AddFont(sfntFont *sfnt.Font) FontKey {
	if sfntFont == nil { panic("nil font") } // likely a dev mistake
	self.fonts = append(self.fonts, sfntFont)
	return FontKey(len(self.fonts) - 1)
}

// Satisfies the [Rasterizer] interface. The size is accepted for
// contract compatibility; sfnt fonts are scalable, so it doesn't
// affect loading itself.
func (self *DefaultRasterizer) LoadFont(desc *fontpkg.Desc, size fract.Unit) (FontKey, error) {
	sfntFont, err := desc.Resolve()
	if err != nil { return 0, err }
	return self.AddFont(sfntFont), nil
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) SetDevicePixelRatio(dpr float64) {
	if dpr <= 0 { panic("dpr <= 0") } // likely a dev mistake
	self.dpr = dpr
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Metrics(fontKey FontKey, size fract.Unit) (Metrics, error) {
	sfntFont, err := self.getFont(fontKey)
	if err != nil { return Metrics{}, err }

	metrics, err := sfntFont.Metrics(&self.buffer, self.scaledSize(size), font.HintingNone)
	if err != nil { return Metrics{}, err }
	return Metrics {
		LineHeight: fract.Unit(metrics.Height).ToFloat64(),
		Ascent: fract.Unit(metrics.Ascent).ToFloat64(),
		Descent: -fract.Unit(metrics.Descent).ToFloat64(),
	}, nil
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) GetGlyph(key GlyphKey) (*Glyph, error) {
	sfntFont, err := self.getFont(key.Font)
	if err != nil { return nil, err }

	cacheKey := self.cacheKey(key)
	if self.glyphCache != nil {
		glyph, found := self.glyphCache.GetGlyph(cacheKey)
		if found { return glyph, nil }
	}

	index, err := sfntFont.GlyphIndex(&self.buffer, key.Char)
	if err != nil { return nil, err }
	if index == 0 { return nil, ErrGlyphMissing }

	ppem := self.scaledSize(key.Size)
	segments, err := sfntFont.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil { return nil, err }
	advance, err := sfntFont.GlyphAdvance(&self.buffer, index, ppem, font.HintingNone)
	if err != nil { return nil, err }

	glyph := &Glyph { Advance: fract.Unit(advance).ToIntFloor() }
	mask := self.tracer.Rasterize(segments)
	if mask != nil {
		glyph.Left = mask.Rect.Min.X
		glyph.Top = -mask.Rect.Min.Y
		glyph.Width = mask.Rect.Dx()
		glyph.Height = mask.Rect.Dy()
		glyph.Buffer = self.maskToBuffer(mask.Pix)
	} else {
		// whitespace and empty glyphs still advance the pen
		glyph.Buffer = internal.BitmapBuffer { Format: self.maskFormat }
	}

	if self.glyphCache != nil {
		self.glyphCache.PassGlyph(cacheKey, glyph)
	}
	return glyph, nil
}

// Satisfies the [Rasterizer] interface. Both keys must refer to the
// same font; mismatched fonts have no kerning data and yield (0, 0).
func (self *DefaultRasterizer) Kerning(left, right GlyphKey) (x, y int) {
	if left.Font != right.Font { return 0, 0 }
	sfntFont, err := self.getFont(left.Font)
	if err != nil { return 0, 0 }

	leftIndex, err := sfntFont.GlyphIndex(&self.buffer, left.Char)
	if err != nil || leftIndex == 0 { return 0, 0 }
	rightIndex, err := sfntFont.GlyphIndex(&self.buffer, right.Char)
	if err != nil || rightIndex == 0 { return 0, 0 }

	kern, err := sfntFont.Kern(&self.buffer, leftIndex, rightIndex, self.scaledSize(right.Size), font.HintingNone)
	if err != nil { return 0, 0 } // sfnt.ErrNotFound and friends
	return fract.Unit(kern).ToInt(), 0
}

// --- internal helpers ---

func (self *DefaultRasterizer) getFont(fontKey FontKey) (*sfnt.Font, error) {
	if int(fontKey) >= len(self.fonts) { return nil, ErrInvalidFontKey }
	return self.fonts[fontKey], nil
}

func (self *DefaultRasterizer) scaledSize(size fract.Unit) fixed.Int26_6 {
	return fixed.Int26_6(size.Mul(fract.FromFloat64Up(self.dpr)))
}

// Cache keys embed every input that can change the resulting pixels.
func (self *DefaultRasterizer) cacheKey(key GlyphKey) [3]uint64 {
	return [3]uint64 {
		(uint64(key.Font) << 32) | uint64(uint32(key.Char)),
		(uint64(uint32(key.Size)) << 32) | uint64(math.Float32bits(float32(self.dpr))),
		uint64(self.maskFormat),
	}
}

// Expands an alpha coverage mask into the configured buffer format.
// RGBA output is a premultiplied white mask (r = g = b = a = coverage);
// RGB output is the same coverage as a grayscale color mask.
func (self *DefaultRasterizer) maskToBuffer(alphas []byte) internal.BitmapBuffer {
	pixelBytes := int(self.maskFormat)
	data := make([]byte, len(alphas)*pixelBytes)
	for n, alpha := range alphas {
		offset := n*pixelBytes
		for i := 0; i < pixelBytes; i++ {
			data[offset + i] = alpha
		}
	}
	return internal.BitmapBuffer { Format: self.maskFormat, Data: data }
}
