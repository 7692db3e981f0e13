package u64

import "bytes"

// Compare compares the magnitudes of a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
//
// The big-endian encodings are compared byte by byte, most significant
// byte first.
func Compare(a, b Uint64) int {
	ab, bb := a.Bytes(), b.Bytes()
	return bytes.Compare(ab[:], bb[:])
}

// Cmp compares u and v; see Compare.
func (u Uint64) Cmp(v Uint64) int { return Compare(u, v) }

// LessThan reports whether u < v.
func (u Uint64) LessThan(v Uint64) bool { return Compare(u, v) < 0 }

// GreaterThan reports whether u > v.
func (u Uint64) GreaterThan(v Uint64) bool { return Compare(u, v) > 0 }

// EqualTo reports whether u == v.
//
// Uint64 values can be compared directly with ==; EqualTo exists for
// symmetry with LessThan and GreaterThan.
func (u Uint64) EqualTo(v Uint64) bool { return Compare(u, v) == 0 }

// IsZero reports whether u == 0.
func (u Uint64) IsZero() bool { return u.hi == 0 && u.lo == 0 }
