package tensor

import "math"

// BF16 is a 16-bit brain floating-point value, represented as raw bits.
// Its memory layout matches the runtime's, so bfloat16 tensors can be viewed
// in place without conversion.
type BF16 uint16

// Float32 widens the value to float32. The conversion is exact: bfloat16 is
// float32 with the low 16 mantissa bits dropped.
func (b BF16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// BF16FromFloat32 truncates a float32 to bfloat16, rounding toward zero.
func BF16FromFloat32(f float32) BF16 {
	return BF16(math.Float32bits(f) >> 16)
}
