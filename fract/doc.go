// fract is a small package for fixed point arithmetics with 26.6 values,
// as commonly used for font rendering. The internal representation of
// [Unit] is compatible with [fixed.Int26_6], so converting between the
// two is a direct cast.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
