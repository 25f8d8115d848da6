package plainword

import "io"

const readBlock = 4096

// Reader decodes text read from the underlying reader.
type Reader struct {
	r   io.Reader
	dec *IncrementalDecoder
	in  []byte
	out []byte
	off int
	err error
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{
		r:   r,
		dec: NewIncrementalDecoder(opts...),
		in:  make([]byte, readBlock),
	}
}

// fill decodes input until some bytes are available or the input ends.
func (r *Reader) fill() {
	r.out = r.out[:0]
	r.off = 0
	for len(r.out) == 0 && r.err == nil {
		n, err := r.r.Read(r.in)
		r.out = r.dec.Decode(r.out, r.in[:n])
		if err == io.EOF {
			r.out = r.dec.Flush(r.out)
		}
		r.err = err
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.off == len(r.out) {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
		if r.off == len(r.out) {
			return 0, r.err
		}
	}
	n := copy(p, r.out[r.off:])
	r.off += n
	return n, nil
}

func (r *Reader) ReadByte() (byte, error) {
	var one [1]byte
	n, err := r.Read(one[:])
	if n == 0 {
		return 0, err
	}
	return one[0], nil
}

// Discarded returns the number of tokens that were not vocabulary words.
func (r *Reader) Discarded() int {
	return r.dec.Discarded()
}

func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
