// Package u64 implements an unsigned 64-bit integer type built from two
// 32-bit halves.
//
// Every operation is carried out on 16-bit limbs held in host words, with
// explicit carries and masking, so the results do not depend on the host
// having a native unsigned 64-bit type or a zero-filling right shift. All
// arithmetic is modulo 2^64: overflow and underflow wrap silently.
//
// The functions Add, Sub, Mul and friends (and the equivalent value
// methods) are pure and may be called concurrently on shared values. The
// pointer methods Set, AddInPlace, XorInPlace and IncInPlace mutate their
// receiver; callers must serialize access to a value they mutate.
package u64

import (
	"encoding/binary"
	"encoding/hex"
	"reflect"
	"strconv"
	"strings"
)

const (
	mask32 = 0xffffffff
	mask16 = 0xffff

	// hexDigits is the length of the canonical text form.
	hexDigits = 16
)

// Uint64 represents a 64-bit unsigned integer as its high and low 32-bit
// halves (bits [63:32] and [31:0]). The zero value is 0.
type Uint64 struct {
	hi uint32
	lo uint32
}

var (
	// Zero is 0.
	Zero Uint64
	// One is 1.
	One = Uint64{lo: 1}
	// Max is 2^64-1.
	Max = Uint64{hi: mask32, lo: mask32}
)

// New constructs a Uint64 from its halves.
func New(hi, lo uint32) Uint64 {
	return Uint64{hi: hi, lo: lo}
}

// FromHex parses up to 16 hex digits. Shorter input is left-padded with
// zeros, so "f", "4f" and "" are all valid.
func FromHex(s string) (Uint64, error) {
	if len(s) > hexDigits {
		return Zero, &InvalidInputError{Input: s, Err: ErrTooLong}
	}
	padded := strings.Repeat("0", hexDigits-len(s)) + s
	var b [8]byte
	if _, err := hex.Decode(b[:], []byte(padded)); err != nil {
		return Zero, &InvalidInputError{Input: s, Err: ErrNotHex}
	}
	return FromBytes(b), nil
}

// MustFromHex is like FromHex but panics if s cannot be parsed.
func MustFromHex(s string) Uint64 {
	u, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromValue constructs a Uint64 from a string-like scalar. Strings and
// byte slices are parsed as hex. Integers, floats and bools are formatted
// as text first and that text is parsed as hex: 123 becomes 0x123, true
// becomes 1 and false becomes 0.
//
// Anything else (nil, slices, maps, structs, pointers, interfaces with
// methods) is rejected rather than coerced.
func FromValue(v any) (Uint64, error) {
	switch v := v.(type) {
	case Uint64:
		return v, nil
	case string:
		return FromHex(v)
	case []byte:
		return FromHex(string(v))
	case nil:
		return Zero, &InvalidInputError{Input: v, Err: ErrNotScalar}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return FromHex("1")
		}
		return FromHex("")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromHex(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromHex(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return FromHex(strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.String:
		return FromHex(rv.String())
	}
	return Zero, &InvalidInputError{Input: v, Err: ErrNotScalar}
}

// FromBytes decodes 8 big-endian bytes.
func FromBytes(b [8]byte) Uint64 {
	return Uint64{
		hi: binary.BigEndian.Uint32(b[:4]),
		lo: binary.BigEndian.Uint32(b[4:]),
	}
}

// FromInt64 returns the Uint64 with the same bit pattern as the
// two's-complement value i. It is the inverse of Int64.
func FromInt64(i int64) Uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i))
	return FromBytes(b)
}

// FromUint64 converts a native uint64.
func FromUint64(v uint64) Uint64 {
	return Uint64{hi: uint32(v >> 32), lo: uint32(v)}
}

// Hex formats the word with the given halves as 16 lowercase hex digits.
func Hex(hi, lo uint32) string {
	var b [8]byte
	binary.BigEndian.PutUint32(b[:4], hi)
	binary.BigEndian.PutUint32(b[4:], lo)
	return hex.EncodeToString(b[:])
}

// Hi returns bits [63:32].
func (u Uint64) Hi() uint32 { return u.hi }

// Lo returns bits [31:0].
func (u Uint64) Lo() uint32 { return u.lo }

// HiLo returns both halves.
func (u Uint64) HiLo() (hi, lo uint32) { return u.hi, u.lo }

// Bytes returns the 8-byte big-endian encoding of u.
func (u Uint64) Bytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint32(b[:4], u.hi)
	binary.BigEndian.PutUint32(b[4:], u.lo)
	return b
}

// ToHex returns u as exactly 16 lowercase hex digits.
func (u Uint64) ToHex() string { return Hex(u.hi, u.lo) }

func (u Uint64) String() string { return u.ToHex() }

// Int64 reinterprets the bit pattern of u as a two's-complement signed
// integer. It is not a value conversion: Max.Int64() is -1.
func (u Uint64) Int64() int64 {
	b := u.Bytes()
	return int64(binary.BigEndian.Uint64(b[:]))
}

// Uint64 converts u to a native uint64.
func (u Uint64) Uint64() uint64 {
	return uint64(u.hi)<<32 | uint64(u.lo)
}

// MarshalText implements encoding.TextMarshaler using the 16-digit hex form.
func (u Uint64) MarshalText() ([]byte, error) {
	return []byte(u.ToHex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// FromHex accepts.
func (u *Uint64) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Set overwrites u with the given halves and returns u.
func (u *Uint64) Set(hi, lo uint32) *Uint64 {
	u.hi, u.lo = hi, lo
	return u
}

// AddInPlace sets u to u+v and returns u.
func (u *Uint64) AddInPlace(v Uint64) *Uint64 {
	*u = Add(*u, v)
	return u
}

// XorInPlace sets u to u^v and returns u.
func (u *Uint64) XorInPlace(v Uint64) *Uint64 {
	*u = Xor(*u, v)
	return u
}

// IncInPlace sets u to u+1 and returns u.
func (u *Uint64) IncInPlace() *Uint64 {
	*u = Inc(*u)
	return u
}
