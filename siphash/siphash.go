// Package siphash implements SipHash-2-4 on emulated 64-bit words.
//
// The state is kept entirely in u64.Uint64 values and only the add, xor and
// rotate operations of package u64 are used, so the output is exact on
// hosts without a trustworthy unsigned 64-bit type.
package siphash

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/wordemu/u64"
)

const (
	// Size is the size of a SipHash-2-4 checksum in bytes.
	Size = 8
	// BlockSize is the block size of SipHash in bytes.
	BlockSize = 8
	// KeySize is the size of a SipHash key in bytes.
	KeySize = 16
)

var (
	c0 = u64.MustFromHex("736f6d6570736575")
	c1 = u64.MustFromHex("646f72616e646f6d")
	c2 = u64.MustFromHex("6c7967656e657261")
	c3 = u64.MustFromHex("7465646279746573")
	ff = u64.New(0, 0xff)
)

// load reads 8 little-endian bytes.
func load(b []byte) u64.Uint64 {
	return u64.New(binary.LittleEndian.Uint32(b[4:]), binary.LittleEndian.Uint32(b[:4]))
}

func store(b []byte, v u64.Uint64) {
	hi, lo := v.HiLo()
	binary.LittleEndian.PutUint32(b[:4], lo)
	binary.LittleEndian.PutUint32(b[4:], hi)
}

type state struct {
	v0, v1, v2, v3 u64.Uint64
}

func newState(key *[KeySize]byte) state {
	k0, k1 := load(key[:8]), load(key[8:])
	return state{
		v0: u64.Xor(k0, c0),
		v1: u64.Xor(k1, c1),
		v2: u64.Xor(k0, c2),
		v3: u64.Xor(k1, c3),
	}
}

func (s *state) round() {
	s.v0 = u64.Add(s.v0, s.v1)
	s.v1 = u64.RotateLeft(s.v1, 13)
	s.v1 = u64.Xor(s.v1, s.v0)
	s.v0 = u64.RotateLeft(s.v0, 32)

	s.v2 = u64.Add(s.v2, s.v3)
	s.v3 = u64.RotateLeft(s.v3, 16)
	s.v3 = u64.Xor(s.v3, s.v2)

	s.v0 = u64.Add(s.v0, s.v3)
	s.v3 = u64.RotateLeft(s.v3, 21)
	s.v3 = u64.Xor(s.v3, s.v0)

	s.v2 = u64.Add(s.v2, s.v1)
	s.v1 = u64.RotateLeft(s.v1, 17)
	s.v1 = u64.Xor(s.v1, s.v2)
	s.v2 = u64.RotateLeft(s.v2, 32)
}

// compress mixes one 8-byte message word into the state (two c-rounds).
func (s *state) compress(m u64.Uint64) {
	s.v3 = u64.Xor(s.v3, m)
	s.round()
	s.round()
	s.v0 = u64.Xor(s.v0, m)
}

// finalize absorbs the last partial block (fewer than 8 bytes) together
// with the low byte of the total length and runs the four d-rounds.
func (s *state) finalize(tail []byte, n uint64) u64.Uint64 {
	var b [BlockSize]byte
	copy(b[:], tail)
	b[7] = byte(n)
	s.compress(load(b[:]))

	s.v2 = u64.Xor(s.v2, ff)
	for range 4 {
		s.round()
	}
	return u64.Xor(u64.Xor(s.v0, s.v1), u64.Xor(s.v2, s.v3))
}

// Sum64 returns the SipHash-2-4 checksum of msg under key.
func Sum64(msg []byte, key *[KeySize]byte) u64.Uint64 {
	s := newState(key)
	n := uint64(len(msg))
	for len(msg) >= BlockSize {
		s.compress(load(msg))
		msg = msg[BlockSize:]
	}
	return s.finalize(msg, n)
}

type digest struct {
	key  [KeySize]byte
	s    state
	buf  [BlockSize]byte
	nbuf int
	n    uint64
}

// New returns a streaming SipHash-2-4 hash.Hash64 keyed with key.
func New(key *[KeySize]byte) hash.Hash64 {
	d := &digest{key: *key}
	d.Reset()
	return d
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.s = newState(&d.key)
	d.nbuf = 0
	d.n = 0
}

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.n += uint64(nn)
	if d.nbuf > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf < BlockSize {
			return nn, nil
		}
		d.s.compress(load(d.buf[:]))
		d.nbuf = 0
	}
	for len(p) >= BlockSize {
		d.s.compress(load(p))
		p = p[BlockSize:]
	}
	d.nbuf = copy(d.buf[:], p)
	return nn, nil
}

// sum64 finalizes a copy of the state so that d can keep being written.
func (d *digest) sum64() u64.Uint64 {
	s := d.s
	return s.finalize(d.buf[:d.nbuf], d.n)
}

func (d *digest) Sum64() uint64 { return d.sum64().Uint64() }

// Sum appends the checksum to b in little-endian order.
func (d *digest) Sum(b []byte) []byte {
	var out [Size]byte
	store(out[:], d.sum64())
	return append(b, out[:]...)
}
