package rast

import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/sfnt"

import "github.com/csdtk/titletext/cache"
import "github.com/csdtk/titletext/fract"
import fontpkg "github.com/csdtk/titletext/font"
import "github.com/csdtk/titletext/internal"

var testFont *sfnt.Font

func init() {
	var err error
	testFont, err = fontpkg.ParseFromBytes(goregular.TTF)
	if err != nil { panic(err) }
}

const testSize = fract.Unit(10 << 6)

func newTestRasterizer() (*DefaultRasterizer, FontKey) {
	rasterizer := NewDefaultRasterizer()
	fontKey := rasterizer.AddFont(testFont)
	return rasterizer, fontKey
}

func TestGetGlyph(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()

	glyph, err := rasterizer.GetGlyph(GlyphKey{ Font: fontKey, Char: 'A', Size: testSize })
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph.Width <= 0 || glyph.Height <= 0 {
		t.Fatalf("expected positive dims, got %dx%d", glyph.Width, glyph.Height)
	}
	if glyph.Top <= 0 { t.Fatalf("expected positive top bearing, got %d", glyph.Top) }
	if glyph.Advance <= 0 { t.Fatalf("expected positive advance, got %d", glyph.Advance) }
	if glyph.Buffer.Format != FormatRGBA {
		t.Fatalf("expected RGBA buffer, got format %d", glyph.Buffer.Format)
	}
	if glyph.Buffer.Len() != glyph.Width*glyph.Height {
		t.Fatalf("expected %d pixels, got %d", glyph.Width*glyph.Height, glyph.Buffer.Len())
	}

	// some pixel must have coverage
	maxCoverage := 0.0
	for n := 0; n < glyph.Buffer.Len(); n++ {
		if c := glyph.Buffer.CoverageAt(n); c > maxCoverage { maxCoverage = c }
	}
	if maxCoverage == 0 { t.Fatal("expected non-zero coverage") }
}

func TestGetGlyphWhitespace(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	glyph, err := rasterizer.GetGlyph(GlyphKey{ Font: fontKey, Char: ' ', Size: testSize })
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph.Width != 0 || glyph.Height != 0 {
		t.Fatalf("expected empty raster, got %dx%d", glyph.Width, glyph.Height)
	}
	if glyph.Advance <= 0 { t.Fatal("expected whitespace to advance") }
}

func TestGetGlyphMissing(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	_, err := rasterizer.GetGlyph(GlyphKey{ Font: fontKey, Char: '\uE000', Size: testSize })
	if err != ErrGlyphMissing { t.Fatalf("expected ErrGlyphMissing, got %v", err) }
}

func TestInvalidFontKey(t *testing.T) {
	rasterizer := NewDefaultRasterizer()
	_, err := rasterizer.GetGlyph(GlyphKey{ Font: 9, Char: 'A', Size: testSize })
	if err != ErrInvalidFontKey { t.Fatalf("expected ErrInvalidFontKey, got %v", err) }
	_, err = rasterizer.Metrics(9, testSize)
	if err != ErrInvalidFontKey { t.Fatalf("expected ErrInvalidFontKey, got %v", err) }
}

func TestMetrics(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	metrics, err := rasterizer.Metrics(fontKey, testSize)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if metrics.LineHeight <= 0 { t.Fatalf("expected positive line height, got %f", metrics.LineHeight) }
	if metrics.Ascent <= 0 { t.Fatalf("expected positive ascent, got %f", metrics.Ascent) }
	if metrics.Descent >= 0 { t.Fatalf("expected negative descent, got %f", metrics.Descent) }
	if metrics.LineHeight < metrics.Ascent - metrics.Descent - 1.0 {
		t.Fatalf("inconsistent metrics %+v", metrics)
	}
}

func TestDevicePixelRatio(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	key := GlyphKey{ Font: fontKey, Char: 'M', Size: testSize }
	glyph1x, err := rasterizer.GetGlyph(key)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	metrics1x, err := rasterizer.Metrics(fontKey, testSize)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	rasterizer.SetDevicePixelRatio(2.0)
	glyph2x, err := rasterizer.GetGlyph(key)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	metrics2x, err := rasterizer.Metrics(fontKey, testSize)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	if glyph2x.Width <= glyph1x.Width {
		t.Fatalf("expected wider glyph at dpr 2 (%d vs %d)", glyph2x.Width, glyph1x.Width)
	}
	if metrics2x.LineHeight <= metrics1x.LineHeight {
		t.Fatalf("expected taller line at dpr 2 (%f vs %f)", metrics2x.LineHeight, metrics1x.LineHeight)
	}

	if !doesNotPanic(func() { rasterizer.SetDevicePixelRatio(1.0) }) {
		t.Fatal("expected no panic")
	}
	if doesNotPanic(func() { rasterizer.SetDevicePixelRatio(0) }) {
		t.Fatal("expected panic on dpr 0")
	}
}

func TestKerning(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	leftKey := GlyphKey{ Font: fontKey, Char: 'A', Size: testSize }
	rightKey := GlyphKey{ Font: fontKey, Char: 'V', Size: testSize }

	x, y := rasterizer.Kerning(leftKey, rightKey)
	if y != 0 { t.Fatalf("expected zero vertical kerning, got %d", y) }
	if x > 0 { t.Fatalf("expected non-positive kerning for 'AV', got %d", x) }

	// missing glyphs kern to zero instead of failing
	x, y = rasterizer.Kerning(GlyphKey{ Font: fontKey, Char: '\uE000', Size: testSize }, rightKey)
	if x != 0 || y != 0 { t.Fatalf("expected (0, 0), got (%d, %d)", x, y) }
}

func TestMaskFormatRGB(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	rasterizer.SetMaskFormat(FormatRGB)
	glyph, err := rasterizer.GetGlyph(GlyphKey{ Font: fontKey, Char: 'A', Size: testSize })
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph.Buffer.Format != FormatRGB { t.Fatal("expected RGB buffer") }
	if glyph.Buffer.Len() != glyph.Width*glyph.Height {
		t.Fatalf("expected %d pixels, got %d", glyph.Width*glyph.Height, glyph.Buffer.Len())
	}
	if len(glyph.Buffer.Data) != glyph.Width*glyph.Height*3 {
		t.Fatalf("unexpected data length %d", len(glyph.Buffer.Data))
	}

	if doesNotPanic(func() { rasterizer.SetMaskFormat(internal.PixelFormat(7)) }) {
		t.Fatal("expected panic on invalid format")
	}
}

func TestGlyphCache(t *testing.T) {
	rasterizer, fontKey := newTestRasterizer()
	rasterizer.SetCache(cache.NewDefaultCache(512*1024))

	key := GlyphKey{ Font: fontKey, Char: 'A', Size: testSize }
	glyph1, err := rasterizer.GetGlyph(key)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	glyph2, err := rasterizer.GetGlyph(key)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph1 != glyph2 { t.Fatal("expected cached glyph to be reused") }

	// dpr changes must bypass stale entries
	rasterizer.SetDevicePixelRatio(2.0)
	glyph3, err := rasterizer.GetGlyph(key)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph3 == glyph1 { t.Fatal("expected a different raster after dpr change") }
	if glyph3.Width <= glyph1.Width { t.Fatal("expected a bigger raster after dpr change") }
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
