package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates. Commonly used to keep track of the
// pen position and glyph offsets during rasterization.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}

// A pair of [Point] values defining a rectangular region. Like
// [image.Rectangle], the Max point is not included in the rectangle.
// The behavior for malformed rectangles is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Converts the rect coordinates to ints and returns them as an
// [image.Rectangle] stdlib value. The returned rectangle is
// guaranteed to contain the original rect.
func (self Rect) ImageRect() image.Rectangle {
	minX, minY := self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor()
	maxX, maxY := self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
