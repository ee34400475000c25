package rast

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"

import "github.com/csdtk/titletext/fract"

// glyphTracer adapts [golang.org/x/image/vector.Rasterizer] to sfnt
// glyph outlines. The x/image/vector rasterizer expects coordinates
// in the positive quadrant, which is why the normalization offset is
// applied to every traced point.
type glyphTracer struct {
	rasterizer vector.Rasterizer
	normOffset fract.Point
}

// Moves the current position to the given point.
func (self *glyphTracer) MoveTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *glyphTracer) LineTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve (also known as a conic Bézier curve)
// to the given target passing through the given control point.
func (self *glyphTracer) QuadTo(control, target fract.Point) {
	cx, cy := control.AddPoint(self.normOffset).ToFloat32s()
	tx, ty := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *glyphTracer) CubeTo(controlA, controlB, target fract.Point) {
	cax, cay := controlA.AddPoint(self.normOffset).ToFloat32s()
	cbx, cby := controlB.AddPoint(self.normOffset).ToFloat32s()
	tx , ty  := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Rasterizes the given outline to an alpha coverage mask. The mask
// rect is adjusted so that drawing it at (0, 0) places the glyph at
// its intended position relative to the origin: Rect.Min.Y is
// typically negative, with y = 0 corresponding to the baseline.
//
// Returns nil if the outline contains no active lines or curves
// (e.g. whitespace glyphs).
func (self *glyphTracer) Rasterize(outline sfnt.Segments) *image.Alpha {
	hasContent := false
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		hasContent = true
		break
	}
	if !hasContent { return nil }

	// get outline bounds
	fbounds := outline.Bounds()
	bounds := fract.UnitsToRect(
		fract.Unit(fbounds.Min.X), fract.Unit(fbounds.Min.Y),
		fract.Unit(fbounds.Max.X), fract.Unit(fbounds.Max.Y),
	)

	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(bounds)
	if width <= 0 || height <= 0 { return nil }
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask and process the outline
	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)

	// since the source texture is a uniform, the sampling start point
	// (the fourth parameter) is unimportant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask
}

// Given the glyph bounds, returns the bounding integer width and height,
// the normalization offset to be applied to keep the coordinates in the
// positive plane, and the final offset to be applied on the mask rect to
// align its bounds to the glyph origin. Glyphs are always rasterized at
// whole-pixel positions here, so no subpixel shift is involved.
func figureOutBounds(bounds fract.Rect) (int, int, fract.Point, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	var maskCorrection image.Point
	maskCorrection.X = floorMinX.ToIntFloor()
	maskCorrection.Y = floorMinY.ToIntFloor()

	var normOffset fract.Point
	normOffset.X = -floorMinX
	normOffset.Y = -floorMinY
	width  := (bounds.Max.X + normOffset.X).ToIntCeil()
	height := (bounds.Max.Y + normOffset.Y).ToIntCeil()
	return width, height, normOffset, maskCorrection
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer *glyphTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(
				fract.Point{X: fract.Unit(segment.Args[0].X), Y: fract.Unit(segment.Args[0].Y)},
			)
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(
				fract.Point{X: fract.Unit(segment.Args[0].X), Y: fract.Unit(segment.Args[0].Y)},
			)
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(
				fract.Point{X: fract.Unit(segment.Args[0].X), Y: fract.Unit(segment.Args[0].Y)},
				fract.Point{X: fract.Unit(segment.Args[1].X), Y: fract.Unit(segment.Args[1].Y)},
			)
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				fract.Point{X: fract.Unit(segment.Args[0].X), Y: fract.Unit(segment.Args[0].Y)},
				fract.Point{X: fract.Unit(segment.Args[1].X), Y: fract.Unit(segment.Args[1].Y)},
				fract.Point{X: fract.Unit(segment.Args[2].X), Y: fract.Unit(segment.Args[2].Y)},
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
