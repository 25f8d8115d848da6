package plainword

import "io"

// writeBlock bounds how much input is encoded before the output is handed
// to the underlying writer.
const writeBlock = 3 * 1024

// Writer encodes everything written to it and writes the words to the
// underlying writer. Close must be called to emit the final chunk and the
// terminating period.
type Writer struct {
	w      io.Writer
	enc    *IncrementalEncoder
	buf    []byte
	closed bool
}

func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{
		w:   w,
		enc: NewIncrementalEncoder(opts...),
	}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	n := 0
	for len(p) > 0 {
		in := p
		if len(in) > writeBlock {
			in = in[:writeBlock]
		}
		var err error
		w.buf, err = w.enc.Encode(w.buf[:0], in)
		if err != nil {
			return n, err
		}
		if err := w.emit(); err != nil {
			return n, err
		}
		n += len(in)
		p = p[len(in):]
	}
	return n, nil
}

func (w *Writer) WriteByte(c byte) error {
	var one = [1]byte{c}
	_, err := w.Write(one[:])
	return err
}

// Flush encodes any pending partial chunk, then flushes the underlying
// writer when it has a Flush method. The pending bytes are padded, so
// flushing mid-stream makes the text longer but it still decodes to the
// same bytes.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	var err error
	w.buf, err = w.enc.Flush(w.buf[:0])
	if err != nil {
		return err
	}
	if err := w.emit(); err != nil {
		return err
	}
	return flushWriter(w.w)
}

// Close writes the remaining words and the final period, then closes the
// underlying writer if it is an io.Closer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var err error
	w.buf, err = w.enc.Finish(w.buf[:0])
	if err != nil {
		return err
	}
	if err := w.emit(); err != nil {
		return err
	}
	if err := flushWriter(w.w); err != nil {
		return err
	}
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (w *Writer) emit() error {
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.w.Write(w.buf)
	return err
}

func flushWriter(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
