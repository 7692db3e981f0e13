package u64

// Xor computes a ^ b.
func Xor(a, b Uint64) Uint64 {
	return Uint64{
		hi: (a.hi ^ b.hi) & mask32,
		lo: (a.lo ^ b.lo) & mask32,
	}
}

// And computes a & b.
func And(a, b Uint64) Uint64 {
	return Uint64{
		hi: (a.hi & b.hi) & mask32,
		lo: (a.lo & b.lo) & mask32,
	}
}

// Or computes a | b.
func Or(a, b Uint64) Uint64 {
	return Uint64{
		hi: (a.hi | b.hi) & mask32,
		lo: (a.lo | b.lo) & mask32,
	}
}

// Mod2 computes a mod 2, which is a & 1.
func Mod2(a Uint64) Uint64 {
	return And(a, New(0, 1))
}

// RotateLeft rotates a left by n bits. The count is taken modulo 64, so a
// negative n rotates right by -n bits.
//
//	RotateLeft(0x0f0f0f0f0f123456, 16) == 0x0f0f0f1234560f0f
func RotateLeft(a Uint64, n int) Uint64 {
	n &= 63
	if n > 32 {
		return RotateRight(a, 64-n)
	}
	switch n {
	case 0:
		return a
	case 32:
		return Uint64{hi: a.lo, lo: a.hi}
	}
	hi, lo := int64(a.hi), int64(a.lo)
	s := uint(n)
	return Uint64{
		hi: uint32((hi<<s | SHR(lo, 32-s)) & mask32),
		lo: uint32((lo<<s | SHR(hi, 32-s)) & mask32),
	}
}

// RotateRight rotates a right by n bits. The count is taken modulo 64, so
// a negative n rotates left by -n bits.
//
//	RotateRight(0x0f0f0f0f0f123456, 16) == 0x34560f0f0f0f0f12
func RotateRight(a Uint64, n int) Uint64 {
	n &= 63
	if n > 32 {
		return RotateLeft(a, 64-n)
	}
	switch n {
	case 0:
		return a
	case 32:
		return Uint64{hi: a.lo, lo: a.hi}
	}
	hi, lo := int64(a.hi), int64(a.lo)
	s := uint(n)
	return Uint64{
		hi: uint32((lo<<(32-s) | SHR(hi, s)) & mask32),
		lo: uint32((hi<<(32-s) | SHR(lo, s)) & mask32),
	}
}

// lowBits returns the word with the low n bits set, n in [0, 64].
func lowBits(n uint) Uint64 {
	switch {
	case n == 0:
		return Zero
	case n < 32:
		return Uint64{lo: uint32(int64(1)<<n - 1)}
	case n < 64:
		return Uint64{hi: uint32(int64(1)<<(n-32) - 1), lo: mask32}
	}
	return Max
}

// Shl computes a << n, filling the vacated low bits with zeros. It rotates
// left and then clears the n bits the rotation wrapped around.
func Shl(a Uint64, n uint) Uint64 {
	if n >= 64 {
		return Zero
	}
	return And(RotateLeft(a, int(n)), Sub(Max, lowBits(n)))
}

// Shr computes the logical shift a >> n, filling the vacated high bits
// with zeros.
func Shr(a Uint64, n uint) Uint64 {
	if n >= 64 {
		return Zero
	}
	high := RotateRight(lowBits(n), int(n))
	return And(RotateRight(a, int(n)), Not(high))
}

// Xor computes u ^ v.
func (u Uint64) Xor(v Uint64) Uint64 { return Xor(u, v) }

// And computes u & v.
func (u Uint64) And(v Uint64) Uint64 { return And(u, v) }

// Or computes u | v.
func (u Uint64) Or(v Uint64) Uint64 { return Or(u, v) }

// Mod2 computes u mod 2.
func (u Uint64) Mod2() Uint64 { return Mod2(u) }

// RotateLeft rotates u left by n bits.
func (u Uint64) RotateLeft(n int) Uint64 { return RotateLeft(u, n) }

// RotateRight rotates u right by n bits.
func (u Uint64) RotateRight(n int) Uint64 { return RotateRight(u, n) }

// Shl computes u << n.
func (u Uint64) Shl(n uint) Uint64 { return Shl(u, n) }

// Shr computes u >> n.
func (u Uint64) Shr(n uint) Uint64 { return Shr(u, n) }
