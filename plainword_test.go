package plainword

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripInputs() map[string][]byte {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i - 128)
	}
	large := make([]byte, 100_000)
	_, _ = rand.New(rand.NewSource(1)).Read(large)
	return map[string][]byte{
		"empty":     {},
		"one":       {0xff},
		"two":       {0xff, 0x00},
		"three":     {0xff, 0x00, 0x01},
		"four":      {0xff, 0x00, 0x01, 0x02},
		"five":      {0xff, 0x00, 0x01, 0x02, 0x03},
		"brown fox": []byte("The quick brown fox jumps over the lazy dog"),
		"all bytes": all,
		"large":     large,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, in := range roundTripInputs() {
		t.Run(name, func(t *testing.T) {
			text, err := Encode(in)
			require.NoError(t, err)
			out := Decode(text)
			assert.Equal(t, len(in), len(out))
			assert.True(t, bytes.Equal(in, out))
		})
	}
}

func TestRoundTripStream(t *testing.T) {
	for name, in := range roundTripInputs() {
		t.Run(name, func(t *testing.T) {
			var text bytes.Buffer
			w := NewWriter(&text)
			for _, c := range in {
				require.NoError(t, w.WriteByte(c))
			}
			require.NoError(t, w.Close())

			r := NewReader(iotest.OneByteReader(bytes.NewReader(text.Bytes())))
			var out []byte
			for {
				c, err := r.ReadByte()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				out = append(out, c)
			}
			assert.True(t, bytes.Equal(in, out))
			assert.Zero(t, r.Discarded())
		})
	}
}

func TestRoundTripOptions(t *testing.T) {
	in := roundTripInputs()["all bytes"]
	opts := [][]Option{
		{WithSentenceLength(1)},
		{WithSentenceLength(7), WithParagraphLength(3)},
		{WithParagraphLength(1), WithLineBreak("\r\n")},
	}
	for i, o := range opts {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			text, err := Encode(in, o...)
			require.NoError(t, err)
			assert.Equal(t, in, Decode(text))
		})
	}
}

func TestRoundTripCustomTable(t *testing.T) {
	words := make([]string, 65)
	for i := range words {
		words[i] = string([]byte{'a' + byte(i/26), 'a' + byte(i%26), 'z'})
	}
	tbl, err := NewSymbolTable(words)
	require.NoError(t, err)
	in := []byte("The quick brown fox jumps over the lazy dog")
	text, err := Encode(in, WithTable(tbl))
	require.NoError(t, err)
	assert.Equal(t, in, Decode(text, WithTable(tbl)))
	assert.NotEqual(t, in, Decode(text))
}
