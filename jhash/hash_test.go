package jhash

import (
	"encoding/binary"
	"hash"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0xFFE40008},
		{"!", 0x49DD93B2},
		{"a", 0xDC7CB8DE},
		{"abc", 0x6E07091C},
		{"!Hello world!", 0x2A4A780F},
		{" Hello world!", 0x2D6E24F6},
		{"a\x00b", 0xE30CE195},
		{"\xff", 0xDA5D3473},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.in))
			assert.Equal(t, tt.want, Bytes([]byte(tt.in)))

			h := New()
			h.AddString(tt.in)
			assert.Equal(t, tt.want, h.Get())
		})
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	h := New()
	assert.Equal(t, Empty, h.Get())
	assert.Equal(t, Empty, String(""))
	assert.Zero(t, h.Len())
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	t.Parallel()

	h := New()
	h.AddByte('!')
	assert.Equal(t, String("!"), h.Get())

	h.AddString("Hello")
	assert.Equal(t, String("!Hello"), h.Get())

	h.AddBytes([]byte(" world!"))
	assert.Equal(t, String("!Hello world!"), h.Get())
	assert.Equal(t, 13, h.Len())
}

func TestGetDoesNotMutate(t *testing.T) {
	t.Parallel()

	h := New()
	h.AddString("abc")
	first := h.Get()
	assert.Equal(t, first, h.Get())
	assert.Equal(t, first, h.Sum32())

	h.AddString("d")
	assert.Equal(t, String("abcd"), h.Get())
}

func TestAddN_StopsAtCount(t *testing.T) {
	t.Parallel()

	buf := []byte("!Hello world!EXTRASPACES")
	h := New()
	n := h.AddN(buf, 13)

	assert.Equal(t, 13, n)
	assert.Equal(t, uint32(0x2A4A780F), h.Get())
	assert.Equal(t, String("!Hello world!"), h.Get())
}

func TestAddUntil_StopsAtTerminator(t *testing.T) {
	t.Parallel()

	buf := []byte("!Hello world!EXTRASPACES")
	h := New()
	n := h.AddUntil(buf, 'E')

	assert.Equal(t, 13, n)
	assert.Equal(t, String("!Hello world!"), h.Get())
}

func TestAddBounded(t *testing.T) {
	t.Parallel()

	buf := []byte("abc;def")
	tests := []struct {
		name  string
		limit int
		term  byte
		want  string
	}{
		{"limit first", 2, ';', "ab"},
		{"terminator first", 6, ';', "abc"},
		{"no limit", -1, ';', "abc"},
		{"limit past end", 100, 'x', "abc;def"},
		{"zero limit", 0, ';', ""},
		{"terminator at start", -1, 'a', ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(WithRetention())
			n := h.AddBounded(buf, tt.limit, tt.term)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, String(tt.want), h.Get())
			assert.Equal(t, []byte(tt.want), h.Retained())
		})
	}
}

func TestAddN_NegativeOrLarge(t *testing.T) {
	t.Parallel()

	h := New()
	assert.Equal(t, 3, h.AddN([]byte("abc"), -1))
	assert.Equal(t, String("abc"), h.Get())

	h.Reset()
	assert.Equal(t, 3, h.AddN([]byte("abc"), 10))
	assert.Equal(t, String("abc"), h.Get())
}

func TestAddCString(t *testing.T) {
	t.Parallel()

	h := New()
	n := h.AddCString([]byte("abc\x00def"))
	assert.Equal(t, 3, n)
	assert.Equal(t, String("abc"), h.Get())

	s := New()
	s.AddString("abc\x00def")
	assert.Equal(t, String("abc\x00def"), s.Get(), "AddString keeps NUL bytes")
	assert.NotEqual(t, h.Get(), s.Get())
}

func TestAvalanche(t *testing.T) {
	t.Parallel()

	a := String("!Hello world!")
	b := String(" Hello world!")
	require.NotEqual(t, a, b)

	diff := a ^ b
	bits := 0
	for diff != 0 {
		bits += int(diff & 1)
		diff >>= 1
	}
	assert.GreaterOrEqual(t, bits, 8, "one flipped input bit should move many output bits")
}

func TestRetention(t *testing.T) {
	t.Parallel()

	plain := New()
	plain.AddString("abc")
	assert.Nil(t, plain.Retained())

	h := New(WithRetention())
	h.AddString("ab")
	h.AddByte('c')
	got := h.Retained()
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'z'
	assert.Equal(t, []byte("abc"), h.Retained(), "Retained must return a copy")
	assert.Equal(t, plain.Get(), h.Get(), "retention does not change the hash")
}

func TestDoneFlag(t *testing.T) {
	t.Parallel()

	h := New()
	assert.False(t, h.IsDone())
	h.SetDone(true)
	assert.True(t, h.IsDone())

	h.AddString("x")
	assert.Equal(t, String("x"), h.Get(), "the flag does not gate ingestion")

	h.SetDone(false)
	assert.False(t, h.IsDone())
}

func TestReset(t *testing.T) {
	t.Parallel()

	h := New(WithRetention())
	h.AddString("abc")
	h.SetDone(true)
	h.Reset()

	assert.Equal(t, Empty, h.Get())
	assert.Zero(t, h.Len())
	assert.False(t, h.IsDone())
	assert.Empty(t, h.Retained())

	h.AddString("q")
	assert.Equal(t, []byte("q"), h.Retained())
}

func TestHash32Interface(t *testing.T) {
	t.Parallel()

	var h hash.Hash32 = New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	n, err := h.Write([]byte("!Hello world!"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, uint32(0x2A4A780F), h.Sum32())

	sum := h.Sum([]byte{0xAA})
	require.Len(t, sum, 5)
	assert.Equal(t, byte(0xAA), sum[0])
	assert.Equal(t, []byte{0x2A, 0x4A, 0x78, 0x0F}, sum[1:])
	assert.Equal(t, h.Sum32(), binary.BigEndian.Uint32(sum[1:]))
}

func TestQuickChunkingIndependent(t *testing.T) {
	property := func(p []byte, cut uint8) bool {
		i := 0
		if len(p) > 0 {
			i = int(cut) % (len(p) + 1)
		}
		h := New()
		h.AddBytes(p[:i])
		h.AddBytes(p[i:])
		return h.Get() == Bytes(p) && h.Len() == len(p)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("hash must not depend on chunking: %v", err)
	}
}

func TestQuickByteAtATime(t *testing.T) {
	property := func(s string) bool {
		h := New()
		for i := 0; i < len(s); i++ {
			h.AddByte(s[i])
		}
		return h.Get() == String(s)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("AddByte must match String: %v", err)
	}
}

func FuzzAddUntil(f *testing.F) {
	f.Add([]byte("!Hello world!EXTRASPACES"), byte('E'))
	f.Add([]byte{}, byte(0))

	f.Fuzz(func(t *testing.T, p []byte, term byte) {
		h := New(WithRetention())
		n := h.AddUntil(p, term)
		if n > len(p) {
			t.Fatalf("ingested %d of %d bytes", n, len(p))
		}
		if n < len(p) && p[n] != term {
			t.Fatalf("stopped at %d on byte %#x, want terminator %#x", n, p[n], term)
		}
		if h.Get() != Bytes(p[:n]) {
			t.Fatalf("hash of prefix mismatch")
		}
		if string(h.Retained()) != string(p[:n]) {
			t.Fatalf("retained %q, want %q", h.Retained(), p[:n])
		}
	})
}

func BenchmarkAddBytes(b *testing.B) {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	h := New()
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.AddBytes(buf)
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = String("!Hello world!")
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var h Hash
	assert.Equal(t, Empty, h.Get())

	h.AddString("!Hello world!")
	assert.Equal(t, uint32(0x2A4A780F), h.Get())

	h.Reset()
	assert.Equal(t, Empty, h.Get())
	h.AddByte('!')
	assert.Equal(t, uint32(0x49DD93B2), h.Sum32())
}
