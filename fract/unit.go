package fract

// Fixed point type used to represent fractional values for font sizes,
// glyph coordinates and kerning. 26 bits represent the integer part of
// the value, while the remaining 6 bits represent the decimal part. For
// an intuitive understanding: var pixels Unit = 64 means 1 pixel, and
// 96 would be 1.5 pixels.
type Unit int32

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	MaxInt  int  = +33554431
	MinInt  int  = -33554432
)

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined. If you want
// to account for overflows, check [MinInt] <= value <= [MaxInt].
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest Unit, rounding up in case of
// ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64Up(value float64) Unit {
	unitApprox := Unit(value*64)
	fp64Approx := unitApprox.ToFloat64()
	if fp64Approx == value { return unitApprox }
	if fp64Approx > value {
		unitApprox -= 1
		fp64Approx = unitApprox.ToFloat64()
	}

	if value - fp64Approx >= 1./128.0 { unitApprox += 1 }
	return unitApprox
}

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns only the fractional part of the Unit, in the [0, 63] range.
func (self Unit) Fract() Unit {
	return self & 0x3F
}

// Returns the result of multiplying the Unit by the given multiplier,
// rounding half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return (int(self) +  0) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) HalfUp() Unit {
	return (self + 32).Floor()
}
