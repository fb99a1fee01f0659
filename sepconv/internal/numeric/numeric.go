// Package numeric holds the type constraints shared by the convolution
// engine's internal packages. It deliberately does not reuse hwy.Lanes:
// hwy.Lanes admits every signed and unsigned integer width as well as
// float32/float64, a wider set than the pixel, accumulator and weight
// types this engine works with.
package numeric

// Pixel is the set of concrete pixel storage types this engine supports:
// 8-bit and 16-bit unsigned integers, and single/double precision floats.
type Pixel interface {
	~uint8 | ~uint16 | ~float32 | ~float64
}

// Accumulator is the set of concrete accumulator types used while summing
// weighted taps: the exact float path accumulates in float32/float64 and
// the Q7 small-kernel u8 path in uint16. The Q15 approx kernels accumulate
// in a local int64, which is not a member of this set.
type Accumulator interface {
	~int32 | ~uint32 | ~uint16 | ~float32 | ~float64
}

// Weight is the set of concrete kernel-weight types: real kernels are
// always floating point.
type Weight interface {
	~float32 | ~float64
}
