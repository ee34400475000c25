package internal

// This package holds the raster glyph representation shared between
// the rast and cache packages. The public aliases live in rast; user
// code should never need to import this package directly.

// Pixel formats for glyph raster buffers. Rasterizers may hand back
// either a true per-pixel alpha coverage buffer or a colored mask
// where coverage has been baked into the color channels (as grayscale
// antialiasing does).
type PixelFormat uint8

const (
	FormatRGB  PixelFormat = 3 // 3 bytes per pixel, coverage as luminance
	FormatRGBA PixelFormat = 4 // 4 bytes per pixel, coverage in the alpha channel
)

// A raw pixel buffer tagged with its format. Coverage extraction is
// centralized on [BitmapBuffer.CoverageAt] so the consuming code never
// has to branch on the format itself.
type BitmapBuffer struct {
	Format PixelFormat
	Data   []byte
}

// Returns the number of bytes each pixel takes in Data.
func (self BitmapBuffer) PixelBytes() int { return int(self.Format) }

// Returns the number of pixels in the buffer.
func (self BitmapBuffer) Len() int {
	if self.Format == 0 { return 0 }
	return len(self.Data)/int(self.Format)
}

// Returns the coverage of the nth pixel in the [0, 1] range.
//
// For [FormatRGBA] buffers the alpha channel is used directly. For
// [FormatRGB] buffers the coverage is derived as the unweighted average
// of the three color channels, treating the mask as a luminance map.
func (self BitmapBuffer) CoverageAt(n int) float64 {
	switch self.Format {
	case FormatRGBA:
		return float64(self.Data[n*4 + 3])/255.0
	case FormatRGB:
		r := float64(self.Data[n*3 + 0])/255.0
		g := float64(self.Data[n*3 + 1])/255.0
		b := float64(self.Data[n*3 + 2])/255.0
		return (r + g + b)/3.0
	default:
		panic("invalid BitmapBuffer format")
	}
}

// A rasterized glyph with its bearings, dimensions and advance, all
// in device pixels. This is what rasterizers produce and what the
// glyph cache stores.
type Glyph struct {
	// Left is the horizontal bearing: the offset from the glyph
	// origin to the left edge of the raster.
	Left int

	// Top is the vertical bearing: the distance from the baseline
	// to the top edge of the raster, positive above the baseline.
	Top int

	// Raster dimensions. Both can be zero (e.g. whitespace glyphs).
	Width  int
	Height int

	// Horizontal advance. Sub-pixel fractions are dropped.
	Advance int

	// The raster pixels. Contains exactly Width*Height pixels.
	Buffer BitmapBuffer
}

// An approximation of the memory taken up by the glyph, used for
// cache accounting.
func (self *Glyph) ByteSize() uint32 {
	const constGlyphSizeFactor = 56
	if self == nil { return constGlyphSizeFactor }
	return uint32(len(self.Buffer.Data)) + constGlyphSizeFactor
}
