package plainword

import "io"

type Encoder interface {
	Encode(b []byte, in []byte) ([]byte, error)
	Flush(b []byte) ([]byte, error)
	Finish(b []byte) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, in []byte) []byte
	Flush(b []byte) []byte
	Discarded() int
}

var (
	_ Encoder        = (*IncrementalEncoder)(nil)
	_ Decoder        = (*IncrementalDecoder)(nil)
	_ io.WriteCloser = (*Writer)(nil)
	_ io.ByteWriter  = (*Writer)(nil)
	_ io.ReadCloser  = (*Reader)(nil)
	_ io.ByteReader  = (*Reader)(nil)
)
