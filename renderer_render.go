package titletext

import "image/color"
import "math"

import "github.com/csdtk/titletext/pixbuf"
import "github.com/csdtk/titletext/rast"

// Each glyph reserves at least this many device pixels of horizontal
// space, even if its rendered extent is narrower. Prevents zero-width
// slots for glyphs with negative or tiny bearings.
const minGlyphSlotWidth = 5

type placedGlyph struct {
	key rast.GlyphKey
	glyph *rast.Glyph
}

// The full render pass: a deterministic function of the current
// (title, scale, color, metrics) state, re-executed wholesale on
// every invalidating change. Either fully replaces the cached bitmap
// or clears it; readers never observe a half-built state.
func (self *Renderer) rerender() {
	// gather glyphs; characters the font can't provide are skipped
	// and contribute neither pixels nor advance
	glyphs := make([]placedGlyph, 0, len(self.title))
	for _, character := range self.title {
		key := rast.GlyphKey{ Font: self.fontKey, Char: character, Size: self.size }
		glyph, err := self.rasterizer.GetGlyph(key)
		if err != nil { continue }
		glyphs = append(glyphs, placedGlyph{ key: key, glyph: glyph })
	}
	if len(glyphs) == 0 {
		self.pixmap = nil
		return
	}

	width := 0
	for _, placed := range glyphs {
		width += maxInt(placed.glyph.Left + placed.glyph.Width, minGlyphSlotWidth)
	}
	height := int(math.Round(self.metrics.LineHeight))

	pixmap := pixbuf.New(width, height)
	if pixmap == nil { // degenerate dimensions degrade to no bitmap
		self.pixmap = nil
		return
	}

	// walk glyphs left to right, kerning against the previous one
	descentOffset := int(math.Round(self.metrics.Descent))
	caret := 0
	var lastKey rast.GlyphKey
	hasLast := false
	for _, placed := range glyphs {
		glyph := placed.glyph
		if hasLast {
			kernX, _ := self.rasterizer.Kerning(lastKey, placed.key)
			caret += kernX
		}

		if tinted := tintGlyph(glyph, self.color); tinted != nil {
			x := glyph.Left + caret
			y := height - glyph.Top + descentOffset
			pixmap.Draw(tinted, x, y, pixbuf.ModeOver)
		}

		caret += glyph.Advance
		lastKey = placed.key
		hasLast = true
	}

	self.pixmap = pixmap
}

// Converts a glyph raster into a premultiplied RGBA pixmap of the
// title color: per pixel, the coverage value replaces the base color's
// alpha and the color channels are premultiplied by it. Returns nil
// for glyphs without pixels (e.g. whitespace).
func tintGlyph(glyph *rast.Glyph, base color.RGBA) *pixbuf.Pixmap {
	if glyph.Width <= 0 || glyph.Height <= 0 { return nil }

	data := make([]byte, glyph.Width*glyph.Height*4)
	for n := 0; n < glyph.Buffer.Len(); n++ {
		coverage := glyph.Buffer.CoverageAt(n)
		if coverage == 0 { continue }
		data[n*4 + 0] = premultiply(base.R, coverage)
		data[n*4 + 1] = premultiply(base.G, coverage)
		data[n*4 + 2] = premultiply(base.B, coverage)
		data[n*4 + 3] = premultiply(255, coverage)
	}
	return pixbuf.FromBytes(data, glyph.Width, glyph.Height)
}

func premultiply(channel uint8, alpha float64) uint8 {
	return uint8(float64(channel)*alpha + 0.5)
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
