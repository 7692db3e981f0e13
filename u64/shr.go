package u64

// wordBits is the width of the host word used for limb arithmetic.
const wordBits = 64

// SHR computes the logical (zero-filling) right shift x >>> c of a host
// word, regardless of the sign of x. The shift count is taken modulo the
// word width.
//
// Go's >> on a signed operand is arithmetic, so the sign-extended high bits
// are cleared by masking down to the low wordBits-c bits.
func SHR(x int64, c uint) int64 {
	c %= wordBits
	if c == 0 {
		return x
	}
	return (x >> c) & ^(int64(-1) << (wordBits - c))
}
