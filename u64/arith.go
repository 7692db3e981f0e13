package u64

// Add computes a + b mod 2^64.
//
// The halves are split into four 16-bit limbs which are summed in host
// words; each limb sum fits in 17 bits, and its carry is shifted into the
// next limb. The carry out of the top limb is dropped.
func Add(a, b Uint64) Uint64 {
	ah, al := int64(a.hi), int64(a.lo)
	bh, bl := int64(b.hi), int64(b.lo)

	l0 := al&mask16 + bl&mask16
	l1 := SHR(al, 16) + SHR(bl, 16) + SHR(l0, 16)
	l2 := ah&mask16 + bh&mask16 + SHR(l1, 16)
	l3 := SHR(ah, 16) + SHR(bh, 16) + SHR(l2, 16)

	return Uint64{
		hi: uint32((l3<<16 | l2&mask16) & mask32),
		lo: uint32((l1<<16 | l0&mask16) & mask32),
	}
}

// Not computes ^a.
func Not(a Uint64) Uint64 {
	return Uint64{
		hi: uint32(^int64(a.hi) & mask32),
		lo: uint32(^int64(a.lo) & mask32),
	}
}

// Neg computes -a mod 2^64 (the two's complement of a).
func Neg(a Uint64) Uint64 {
	return Add(One, Not(a))
}

// Sub computes a - b mod 2^64.
func Sub(a, b Uint64) Uint64 {
	return Add(a, Neg(b))
}

// Inc computes a + 1 mod 2^64.
func Inc(a Uint64) Uint64 {
	return Add(a, One)
}

// Mul computes a * b mod 2^64.
//
// Each operand is split into four 16-bit limbs and the schoolbook product
// is accumulated into four output limbs, so every partial product is below
// 2^32 and every partial sum stays well inside a host word. Partial
// products that only affect bits at or above 2^64 are skipped.
func Mul(a, b Uint64) Uint64 {
	if a.IsZero() || b.IsZero() {
		return Zero
	}

	a48 := SHR(int64(a.hi), 16) & mask16
	a32 := int64(a.hi) & mask16
	a16 := SHR(int64(a.lo), 16) & mask16
	a00 := int64(a.lo) & mask16

	b48 := SHR(int64(b.hi), 16) & mask16
	b32 := int64(b.hi) & mask16
	b16 := SHR(int64(b.lo), 16) & mask16
	b00 := int64(b.lo) & mask16

	var c48, c32, c16, c00 int64

	c00 += a00 * b00
	c16 += SHR(c00, 16)
	c00 &= mask16

	c16 += a16 * b00
	c32 += SHR(c16, 16)
	c16 &= mask16

	c16 += a00 * b16
	c32 += SHR(c16, 16)
	c16 &= mask16

	c32 += a32 * b00
	c48 += SHR(c32, 16)
	c32 &= mask16

	c32 += a16 * b16
	c48 += SHR(c32, 16)
	c32 &= mask16

	c32 += a00 * b32
	c48 += SHR(c32, 16)
	c32 &= mask16

	c48 += a48*b00 + a32*b16 + a16*b32 + a00*b48
	c48 &= mask16

	return Uint64{
		hi: uint32((c48<<16 | c32) & mask32),
		lo: uint32((c16<<16 | c00) & mask32),
	}
}

// Add computes u + v.
func (u Uint64) Add(v Uint64) Uint64 { return Add(u, v) }

// Sub computes u - v.
func (u Uint64) Sub(v Uint64) Uint64 { return Sub(u, v) }

// Mul computes u * v.
func (u Uint64) Mul(v Uint64) Uint64 { return Mul(u, v) }

// Neg computes -u.
func (u Uint64) Neg() Uint64 { return Neg(u) }

// Not computes ^u.
func (u Uint64) Not() Uint64 { return Not(u) }

// Inc computes u + 1.
func (u Uint64) Inc() Uint64 { return Inc(u) }
