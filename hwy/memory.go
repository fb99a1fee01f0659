package hwy

// This file provides additional memory operations for Highway.
// These are pure Go (scalar) implementations that work with any type.

// LoadInterleaved4 loads interleaved quads and deinterleaves into four vectors.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved quads):
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, ...]
//	vec_b = [b0, b1, ...]
//	vec_c = [c0, c1, ...]
//	vec_d = [d0, d1, ...]
//
// This is what the 4-channel (RGBA) row and column kernels use to split a
// packed pixel buffer into per-channel lanes before filtering each channel.
func LoadInterleaved4[T Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	d := make([]T, n)

	srcIdx := 0
	for i := 0; i < n && srcIdx+3 < len(src); i++ {
		a[i] = src[srcIdx]
		b[i] = src[srcIdx+1]
		c[i] = src[srcIdx+2]
		d[i] = src[srcIdx+3]
		srcIdx += 4
	}

	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}, Vec[T]{data: d}
}

// StoreInterleaved4 stores four vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format to Array-of-Structures (AoS).
//
// Input vectors:
//
//	vec_a = [a0, a1, ...]
//	vec_b = [b0, b1, ...]
//	vec_c = [c0, c1, ...]
//	vec_d = [d0, d1, ...]
//
// Output memory layout (interleaved quads):
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
//
// This is the inverse of LoadInterleaved4, used to reassemble the filtered
// per-channel lanes back into a packed RGBA buffer.
func StoreInterleaved4[T Lanes](a, b, c, d Vec[T], dst []T) {
	n := min(len(d.data), min(len(c.data), min(len(b.data), len(a.data))))

	dstIdx := 0
	for i := 0; i < n && dstIdx+3 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dst[dstIdx+3] = d.data[i]
		dstIdx += 4
	}
}
