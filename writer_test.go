package plainword

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

type failingWriter struct {
	err error
}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func TestWriterLargeWrite(t *testing.T) {
	in := make([]byte, 10*writeBlock+1)
	for i := range in {
		in[i] = byte(i)
	}
	var out bytes.Buffer
	w := NewWriter(&out)
	n, err := w.Write(in)
	require.NoError(t, err)
	assert.Equal(t, len(in), n)
	require.NoError(t, w.Close())
	expected, err := Encode(in)
	require.NoError(t, err)
	assert.Equal(t, expected, out.Bytes())
}

func TestWriterClose(t *testing.T) {
	sink := &closeRecorder{}
	w := NewWriter(sink)
	_, err := w.Write([]byte{0xff})
	require.NoError(t, err)
	assert.Empty(t, sink.String())
	require.NoError(t, w.Close())
	assert.Equal(t, "Guy any lot lot.", sink.String())
	assert.Equal(t, 1, sink.closed)

	require.NoError(t, w.Close())
	assert.Equal(t, 1, sink.closed)

	_, err = w.Write([]byte{0x00})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, w.WriteByte(0x00), ErrClosed)
	assert.ErrorIs(t, w.Flush(), ErrClosed)
}

func TestWriterCloseEmpty(t *testing.T) {
	sink := &closeRecorder{}
	require.NoError(t, NewWriter(sink).Close())
	assert.Empty(t, sink.String())
	assert.Equal(t, 1, sink.closed)
}

func TestWriterFlush(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)
	w := NewWriter(bw)
	_, err := w.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Zero(t, out.Len())
	require.NoError(t, w.Flush())
	assert.Equal(t, "But it out lot", out.String())
	_, err = w.Write([]byte{0xff})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "But it out lot guy any lot lot.", out.String())
	assert.Equal(t, []byte{'h', 'i', 0xff}, Decode(out.Bytes()))
}

func TestWriterSinkError(t *testing.T) {
	failure := errors.New("disk full")
	w := NewWriter(failingWriter{failure})
	n, err := w.Write([]byte{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = w.Write([]byte{3, 4, 5})
	assert.ErrorIs(t, err, failure)
	assert.Zero(t, n)

	w = NewWriter(failingWriter{failure})
	_, err = w.Write([]byte{1})
	require.NoError(t, err)
	assert.ErrorIs(t, w.Close(), failure)
}
