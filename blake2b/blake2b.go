// Package blake2b implements the BLAKE2b hash function (RFC 7693) on
// emulated 64-bit words from package u64.
package blake2b

import (
	"encoding/binary"
	"errors"
	"hash"

	"github.com/cespare/wordemu/u64"
)

const (
	// Size is the size of a BLAKE2b-512 checksum in bytes.
	Size = 64
	// Size256 is the size of a BLAKE2b-256 checksum in bytes.
	Size256 = 32
	// BlockSize is the block size of BLAKE2b in bytes.
	BlockSize = 128
)

var (
	errHashSize = errors.New("blake2b: invalid hash size")
	errKeySize  = errors.New("blake2b: invalid key size")
)

var iv = [8]u64.Uint64{
	u64.MustFromHex("6a09e667f3bcc908"),
	u64.MustFromHex("bb67ae8584caa73b"),
	u64.MustFromHex("3c6ef372fe94f82b"),
	u64.MustFromHex("a54ff53a5f1d36f1"),
	u64.MustFromHex("510e527fade682d1"),
	u64.MustFromHex("9b05688c2b3e6c1f"),
	u64.MustFromHex("1f83d9abfb41bd6b"),
	u64.MustFromHex("5be0cd19137e2179"),
}

var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func load(b []byte) u64.Uint64 {
	return u64.New(binary.LittleEndian.Uint32(b[4:]), binary.LittleEndian.Uint32(b[:4]))
}

func store(b []byte, v u64.Uint64) {
	hi, lo := v.HiLo()
	binary.LittleEndian.PutUint32(b[:4], lo)
	binary.LittleEndian.PutUint32(b[4:], hi)
}

func g(v *[16]u64.Uint64, a, b, c, d int, x, y u64.Uint64) {
	v[a] = u64.Add(u64.Add(v[a], v[b]), x)
	v[d] = u64.RotateRight(u64.Xor(v[d], v[a]), 32)
	v[c] = u64.Add(v[c], v[d])
	v[b] = u64.RotateRight(u64.Xor(v[b], v[c]), 24)
	v[a] = u64.Add(u64.Add(v[a], v[b]), y)
	v[d] = u64.RotateRight(u64.Xor(v[d], v[a]), 16)
	v[c] = u64.Add(v[c], v[d])
	v[b] = u64.RotateRight(u64.Xor(v[b], v[c]), 63)
}

// compress runs the F function over one block. t0 and t1 are the low and
// high words of the byte counter.
func compress(h *[8]u64.Uint64, block []byte, t0, t1 u64.Uint64, last bool) {
	var m [16]u64.Uint64
	for i := range m {
		m[i] = load(block[i*8:])
	}

	var v [16]u64.Uint64
	copy(v[:8], h[:])
	copy(v[8:], iv[:])
	v[12] = u64.Xor(v[12], t0)
	v[13] = u64.Xor(v[13], t1)
	if last {
		v[14] = u64.Not(v[14])
	}

	for r := range 12 {
		s := &sigma[r%10]
		g(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		g(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		g(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		g(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])
		g(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		g(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		g(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		g(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := range h {
		h[i] = u64.Xor(h[i], u64.Xor(v[i], v[i+8]))
	}
}

type digest struct {
	h      [8]u64.Uint64
	t0, t1 u64.Uint64
	buf    [BlockSize]byte
	nbuf   int
	size   int
	key    [BlockSize]byte
	keyLen int
}

// New returns a hash.Hash computing a BLAKE2b checksum of size bytes
// (1 to 64), optionally keyed with up to 64 bytes of key.
func New(size int, key []byte) (hash.Hash, error) {
	if size < 1 || size > Size {
		return nil, errHashSize
	}
	if len(key) > Size {
		return nil, errKeySize
	}
	d := &digest{size: size, keyLen: len(key)}
	copy(d.key[:], key)
	d.Reset()
	return d, nil
}

// New512 returns an unkeyed BLAKE2b-512 hash.
func New512() hash.Hash {
	h, _ := New(Size, nil)
	return h
}

// Sum512 returns the BLAKE2b-512 checksum of data.
func Sum512(data []byte) [Size]byte {
	var sum [Size]byte
	d := New512()
	d.Write(data)
	d.Sum(sum[:0])
	return sum
}

// Sum256 returns the BLAKE2b-256 checksum of data.
func Sum256(data []byte) [Size256]byte {
	var sum [Size256]byte
	d, _ := New(Size256, nil)
	d.Write(data)
	d.Sum(sum[:0])
	return sum
}

func (d *digest) Size() int      { return d.size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.h = iv
	param := u64.New(0, 0x01010000|uint32(d.keyLen)<<8|uint32(d.size))
	d.h[0] = u64.Xor(d.h[0], param)
	d.t0, d.t1 = u64.Zero, u64.Zero
	d.nbuf = 0
	if d.keyLen > 0 {
		d.buf = d.key
		d.nbuf = BlockSize
	}
}

func (d *digest) addCounter(n int) {
	d.t0, d.t1 = incCounter(d.t0, d.t1, n)
}

// incCounter adds n to the 128-bit counter (t1, t0).
func incCounter(t0, t1 u64.Uint64, n int) (u64.Uint64, u64.Uint64) {
	inc := u64.New(0, uint32(n))
	t0 = u64.Add(t0, inc)
	if t0.LessThan(inc) {
		t1 = u64.Inc(t1)
	}
	return t0, t1
}

// Write keeps up to one full block buffered; a full buffer is compressed
// only once more input arrives, since the final block is compressed with
// the last-block flag set.
func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	for len(p) > 0 {
		if d.nbuf == BlockSize {
			d.addCounter(BlockSize)
			compress(&d.h, d.buf[:], d.t0, d.t1, false)
			d.nbuf = 0
		}
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
	}
	return nn, nil
}

func (d *digest) Sum(b []byte) []byte {
	h := d.h
	t0, t1 := d.t0, d.t1

	var block [BlockSize]byte
	copy(block[:], d.buf[:d.nbuf])
	t0, t1 = incCounter(t0, t1, d.nbuf)
	compress(&h, block[:], t0, t1, true)

	var out [Size]byte
	for i, w := range h {
		store(out[i*8:], w)
	}
	return append(b, out[:d.size]...)
}
