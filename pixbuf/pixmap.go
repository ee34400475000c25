package pixbuf

import "image"

// Compositing modes accepted by [Pixmap.Draw].
type Mode uint8

const (
	ModeSrc  Mode = 0 // copy source pixels, transparent ones included
	ModeOver Mode = 1 // premultiplied source-over blending (default paint)
)

// A Pixmap is a width x height buffer of RGBA8 pixels with premultiplied
// alpha, stored row-major without padding. The zero-size cases are
// rejected at construction: a non-nil Pixmap always has at least one
// pixel.
type Pixmap struct {
	pix []byte
	width  int
	height int
}

// Creates a zero-initialized (fully transparent) pixmap of the given
// dimensions. Returns nil if any dimension is non-positive or the
// total byte size would overflow an int.
func New(width, height int) *Pixmap {
	if width <= 0 || height <= 0 { return nil }
	if width > (maxInt/4)/height { return nil }
	return &Pixmap {
		pix: make([]byte, width*height*4),
		width: width,
		height: height,
	}
}

// Creates a pixmap view over the given raw RGBA8 bytes. The data is
// not copied, so the caller must not modify it while the view is in
// use. Returns nil if the dimensions are non-positive or don't match
// the data length.
func FromBytes(data []byte, width, height int) *Pixmap {
	if width <= 0 || height <= 0 { return nil }
	if width > (maxInt/4)/height { return nil }
	if len(data) != width*height*4 { return nil }
	return &Pixmap { pix: data, width: width, height: height }
}

const maxInt = int(^uint(0) >> 1)

// Returns the pixmap width in pixels.
func (self *Pixmap) Width() int { return self.width }

// Returns the pixmap height in pixels.
func (self *Pixmap) Height() int { return self.height }

// Returns the underlying pixel storage. Pixels are RGBA8 with
// premultiplied alpha, row-major.
func (self *Pixmap) Pix() []byte { return self.pix }

// Returns the premultiplied RGBA channels of the pixel at (x, y).
// Out of bounds coordinates return zeros.
func (self *Pixmap) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height {
		return 0, 0, 0, 0
	}
	i := (y*self.width + x)*4
	return self.pix[i + 0], self.pix[i + 1], self.pix[i + 2], self.pix[i + 3]
}

// Returns an [image.RGBA] sharing the pixmap's storage. Mutating the
// returned image mutates the pixmap.
func (self *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA {
		Pix: self.pix,
		Stride: self.width*4,
		Rect: image.Rect(0, 0, self.width, self.height),
	}
}

// Draws the given source pixmap onto the receiver with its top-left
// corner at (x, y), clipping the parts that fall outside the receiver.
// Nil sources are ignored.
func (self *Pixmap) Draw(src *Pixmap, x, y int, mode Mode) {
	if src == nil { return }

	// compute the overlapping region in destination coordinates
	minX, minY := x, y
	maxX, maxY := x + src.width, y + src.height
	if minX < 0 { minX = 0 }
	if minY < 0 { minY = 0 }
	if maxX > self.width  { maxX = self.width  }
	if maxY > self.height { maxY = self.height }
	if minX >= maxX || minY >= maxY { return }

	for dstY := minY; dstY < maxY; dstY++ {
		srcRow := ((dstY - y)*src.width + (minX - x))*4
		dstRow := (dstY*self.width + minX)*4
		switch mode {
		case ModeSrc:
			copy(self.pix[dstRow : dstRow + (maxX - minX)*4], src.pix[srcRow:])
		case ModeOver:
			for i := 0; i < (maxX - minX)*4; i += 4 {
				blendOver(self.pix[dstRow + i : dstRow + i + 4], src.pix[srcRow + i : srcRow + i + 4])
			}
		default:
			panic("unexpected compositing mode")
		}
	}
}

// Premultiplied source-over: dst = src + dst*(1 - srcAlpha).
func blendOver(dst, src []byte) {
	sa := uint32(src[3])
	if sa == 255 {
		copy(dst, src[:4])
		return
	}
	if sa == 0 { return }
	inv := 255 - sa
	dst[0] = uint8(uint32(src[0]) + (uint32(dst[0])*inv + 127)/255)
	dst[1] = uint8(uint32(src[1]) + (uint32(dst[1])*inv + 127)/255)
	dst[2] = uint8(uint32(src[2]) + (uint32(dst[2])*inv + 127)/255)
	dst[3] = uint8(sa + (uint32(dst[3])*inv + 127)/255)
}
