package plainword

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeChunkMatchesBase64(t *testing.T) {
	chunks := [][]byte{
		{0x00}, {0xff}, {0x80}, {0x01},
		{0x00, 0x00}, {0xff, 0xff}, {0xde, 0xad},
		{0x00, 0x00, 0x00}, {0xff, 0xff, 0xff}, {0x4d, 0x61, 0x6e}, {0xfb, 0xef, 0xbe},
	}
	for v := 0; v < 256; v++ {
		chunks = append(chunks, []byte{byte(v)}, []byte{byte(v), byte(255 - v)}, []byte{byte(v), byte(v * 7), byte(v * 13)})
	}
	for _, c := range chunks {
		t.Run(fmt.Sprintf("% x", c), func(t *testing.T) {
			expected := base64.StdEncoding.EncodeToString(c)
			symbols := encodeChunk(nil, c)
			assert.Len(t, symbols, 4)
			assert.Equal(t, expected, string(symbols))
			assert.Equal(t, c, decodeGroup(nil, symbols))
		})
	}
}

func TestEncodeChunkEmpty(t *testing.T) {
	assert.Empty(t, encodeChunk(nil, nil))
}

func TestEncodeChunkTooLong(t *testing.T) {
	assert.Panics(t, func() {
		encodeChunk(nil, []byte{1, 2, 3, 4})
	})
}

func TestDecodeGroupPartial(t *testing.T) {
	tests := []struct {
		group    string
		expected []byte
	}{
		{"", nil},
		{"/", nil},
		{"/w", []byte{0xff}},
		{"/w=", []byte{0xff}},
		{"/w==", []byte{0xff}},
		{"TWE", []byte("Ma")},
		{"TWE=", []byte("Ma")},
		{"TWFu", []byte("Man")},
		{"====", nil},
		// trailing bits that do not fill a byte are dropped
		{"//", []byte{0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			result := decodeGroup(nil, []byte(tt.group))
			if tt.expected == nil {
				assert.Empty(t, result)
			} else {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestDecodeGroupAppends(t *testing.T) {
	b := decodeGroup([]byte("x"), []byte("TWFu"))
	assert.Equal(t, []byte("xMan"), b)
}
