package titletext

import "image/color"

import "github.com/csdtk/titletext/cache"
import "github.com/csdtk/titletext/fract"
import "github.com/csdtk/titletext/font"
import "github.com/csdtk/titletext/pixbuf"
import "github.com/csdtk/titletext/rast"

// This file contains the Renderer type definition, construction and
// all the getter and setter methods. The actual rendering pass lives
// in renderer_render.go.

// Titles are laid out at a fixed nominal size of 10 logical units;
// the device pixel ratio takes care of actual output sizes.
const nominalSize = fract.Unit(10 << 6)

// Loaded once at construction so the backend materializes face
// metrics, and reloaded on scale changes for the same reason. The
// concrete character has no special meaning.
const referenceChar = 'm'

// Glyph rasters at titlebar sizes are tiny; half a MiB fits several
// alphabets worth of them at multiple scales.
const glyphCacheBytes = 512*1024

// A Renderer owns the font selection state, a font backend rasterizer,
// the current rendering parameters (title, scale, color) and the cached
// output bitmap.
//
// Renderers are single-threaded: every mutator runs its re-render to
// completion before returning, and the rasterizer and cached bitmap
// are exclusively owned. UI elements that each need a rendered title
// construct one Renderer each.
type Renderer struct {
	title string

	fontDesc *font.Desc
	fontKey rast.FontKey
	size fract.Unit
	scale uint32
	metrics rast.Metrics
	rasterizer rast.Rasterizer
	color color.RGBA

	pixmap *pixbuf.Pixmap
}

// Creates a [Renderer] that draws titles with the given color, using
// the default sans-serif font backend with a glyph cache attached.
//
// Fails if the font can't be resolved or its metrics can't be queried;
// there is no retry, the caller decides what to do without a title.
func New(titleColor color.RGBA) (*Renderer, error) {
	rasterizer := rast.NewDefaultRasterizer()
	rasterizer.SetCache(cache.NewDefaultCache(glyphCacheBytes))
	return newRenderer(rasterizer, titleColor)
}

func newRenderer(rasterizer rast.Rasterizer, titleColor color.RGBA) (*Renderer, error) {
	fontDesc := font.SansSerif()
	fontKey, err := rasterizer.LoadFont(fontDesc, nominalSize)
	if err != nil { return nil, err }

	// Load at least one glyph for the face before asking for metrics.
	// Some backends defer metric computation until the first glyph load.
	_, err = rasterizer.GetGlyph(rast.GlyphKey{ Font: fontKey, Char: referenceChar, Size: nominalSize })
	if err != nil { return nil, err }
	metrics, err := rasterizer.Metrics(fontKey, nominalSize)
	if err != nil { return nil, err }

	renderer := &Renderer {
		fontDesc: fontDesc,
		fontKey: fontKey,
		size: nominalSize,
		scale: 1,
		metrics: metrics,
		rasterizer: rasterizer,
		color: titleColor,
	}
	renderer.rerender() // empty title, clears to no pixmap
	return renderer, nil
}

// Sets the title to be rendered. If the title didn't change, this is
// a no-op; otherwise the bitmap is re-rendered before returning.
func (self *Renderer) SetTitle(title string) {
	if self.title == title { return }
	self.title = title
	self.rerender()
}

// Returns the current title.
func (self *Renderer) GetTitle() string { return self.title }

// Sets the device pixel ratio used for rendering. The scale must be
// at least 1. If the scale didn't change, this is a no-op; otherwise
// the backend is reconfigured, metrics are refreshed and the bitmap
// is re-rendered before returning.
//
// Metric refresh failures are tolerated: the previous metrics are
// kept and rendering proceeds with them, since a stale-but-present
// title beats losing the title on a transient backend glitch.
func (self *Renderer) SetScale(scale uint32) {
	if scale < 1 { panic("scale < 1") } // likely a dev mistake
	if self.scale == scale { return }
	self.rasterizer.SetDevicePixelRatio(float64(scale))
	self.scale = scale

	self.refreshMetrics()

	self.rerender()
}

// Returns the current device pixel ratio.
func (self *Renderer) GetScale() uint32 { return self.scale }

// Sets the title color. If the color didn't change, this is a no-op;
// otherwise the bitmap is re-rendered before returning.
func (self *Renderer) SetColor(titleColor color.RGBA) {
	if self.color == titleColor { return }
	self.color = titleColor
	self.rerender()
}

// Returns the current title color.
func (self *Renderer) GetColor() color.RGBA { return self.color }

// Returns the currently cached title bitmap, or nil when the title is
// empty or produced no glyphs. The bitmap always reflects the last
// rendered (title, scale, color) state; reading never renders.
func (self *Renderer) Pixmap() *pixbuf.Pixmap { return self.pixmap }

// Best effort: on failure the previous metrics are kept.
func (self *Renderer) refreshMetrics() {
	_, err := self.rasterizer.GetGlyph(rast.GlyphKey{ Font: self.fontKey, Char: referenceChar, Size: self.size })
	if err != nil { return }
	metrics, err := self.rasterizer.Metrics(self.fontKey, self.size)
	if err != nil { return }
	self.metrics = metrics
}
