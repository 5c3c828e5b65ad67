// hash.go — the streaming accumulator and its hash.Hash32 methods.
//
// Package jhash implements a seeded Jenkins one-at-a-time hash as a streaming
// 32-bit accumulator.
//
// Each byte is mixed into the running value; Get applies the finishing
// avalanche to a copy, so a Hash can be read, extended and read again:
//
//	h := jhash.New()
//	h.AddString("!Hello")
//	a := h.Get()
//	h.AddString(" world!")
//	b := h.Get() // == jhash.String("!Hello world!")
//
// The result depends only on the bytes ingested, never on how they were
// split across calls. Hash is not safe for concurrent use.
package jhash

import (
	"encoding/binary"
	"hash"
)

const (
	// Seed is the accumulator value before any byte is mixed in.
	Seed uint32 = 0xFFFFFFFF
	// Empty is the finished hash of zero bytes.
	Empty uint32 = 0xFFE40008
	// Size is the length in bytes of Sum's output.
	Size = 4
)

// Hash is an incremental hash accumulator. The zero value is ready to use and
// hashes like New().
type Hash struct {
	// value holds the accumulator XOR Seed, so zero means freshly seeded.
	value  uint32
	n      int
	retain bool
	bytes  []byte
	done   bool
}

// Option configures a Hash.
type Option func(*Hash)

// WithRetention keeps a copy of every ingested byte, readable via Retained.
func WithRetention() Option {
	return func(h *Hash) { h.retain = true }
}

// New returns a Hash seeded with Seed.
func New(opts ...Option) *Hash {
	h := &Hash{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// mix folds one byte into a running value.
func mix(h uint32, b byte) uint32 {
	h += uint32(b)
	h += h << 10
	h ^= h >> 6
	return h
}

// finish applies the final avalanche.
func finish(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// AddByte mixes b into the hash.
func (h *Hash) AddByte(b byte) {
	h.value = mix(h.value^Seed, b) ^ Seed
	h.n++
	if h.retain {
		h.bytes = append(h.bytes, b)
	}
}

// AddBounded ingests bytes from p until limit bytes have been consumed, a
// byte equal to term is reached, or p ends. The terminator is not ingested.
// It returns the number of bytes ingested. A negative limit means no limit.
func (h *Hash) AddBounded(p []byte, limit int, term byte) int {
	if limit < 0 || limit > len(p) {
		limit = len(p)
	}
	count := 0
	for _, b := range p[:limit] {
		if b == term {
			break
		}
		h.AddByte(b)
		count++
	}
	return count
}

// AddN ingests exactly min(n, len(p)) bytes; no terminator is checked.
func (h *Hash) AddN(p []byte, n int) int {
	if n < 0 || n > len(p) {
		n = len(p)
	}
	for _, b := range p[:n] {
		h.AddByte(b)
	}
	return n
}

// AddUntil ingests bytes from p up to, not including, the first term.
func (h *Hash) AddUntil(p []byte, term byte) int {
	return h.AddBounded(p, -1, term)
}

// AddCString ingests a NUL-terminated byte string.
func (h *Hash) AddCString(p []byte) int {
	return h.AddUntil(p, 0)
}

// AddBytes ingests all of p.
func (h *Hash) AddBytes(p []byte) {
	h.AddN(p, len(p))
}

// AddString ingests all bytes of s, including any NUL bytes.
func (h *Hash) AddString(s string) {
	for i := 0; i < len(s); i++ {
		h.AddByte(s[i])
	}
}

// Get returns the finished hash of everything ingested so far. It does not
// change the accumulator.
func (h *Hash) Get() uint32 {
	return finish(h.value ^ Seed)
}

// Len returns the number of bytes ingested since New or Reset.
func (h *Hash) Len() int { return h.n }

// Retained returns a copy of the ingested bytes, or nil without retention.
func (h *Hash) Retained() []byte {
	if !h.retain {
		return nil
	}
	out := make([]byte, len(h.bytes))
	copy(out, h.bytes)
	return out
}

// IsDone reports the completion flag. The Add methods do not consult it.
func (h *Hash) IsDone() bool { return h.done }

// SetDone sets the completion flag.
func (h *Hash) SetDone(done bool) { h.done = done }

// hash.Hash32

// Write ingests p. It never returns an error.
func (h *Hash) Write(p []byte) (int, error) {
	h.AddBytes(p)
	return len(p), nil
}

// Sum appends the big-endian finished hash to b.
func (h *Hash) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Get())
}

// Sum32 is Get.
func (h *Hash) Sum32() uint32 { return h.Get() }

// Reset reseeds the accumulator and clears retained bytes and the done flag.
// Retention stays as configured.
func (h *Hash) Reset() {
	h.value = 0
	h.n = 0
	h.bytes = h.bytes[:0]
	h.done = false
}

func (h *Hash) Size() int      { return Size }
func (h *Hash) BlockSize() int { return 1 }

var _ hash.Hash32 = (*Hash)(nil)
