package plainword

import "fmt"

// IncrementalEncoder turns bytes into words laid out as sentences and
// paragraphs. Output is appended to the slice passed in.
type IncrementalEncoder struct {
	table              *SymbolTable
	sentenceWords      int
	paragraphSentences int
	lineBreak          string
	chunk              [3]byte
	chunkLen           int
	symbols            [4]byte
	// words since the last period and sentences since the last paragraph break
	words, sentences int
	capitalize       bool
	separate         bool
}

func newIncrementalEncoder(o options) *IncrementalEncoder {
	return &IncrementalEncoder{
		table:              o.table,
		sentenceWords:      o.sentenceWords,
		paragraphSentences: o.paragraphSentences,
		lineBreak:          o.lineBreak,
		capitalize:         true,
	}
}

func NewIncrementalEncoder(opts ...Option) *IncrementalEncoder {
	return newIncrementalEncoder(newOptions(opts))
}

func (e *IncrementalEncoder) Encode(b []byte, in []byte) ([]byte, error) {
	var err error
	for _, c := range in {
		e.chunk[e.chunkLen] = c
		e.chunkLen++
		if e.chunkLen == len(e.chunk) {
			b, err = e.flushChunk(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

// Flush writes out a pending chunk of 1 or 2 bytes using padding words.
func (e *IncrementalEncoder) Flush(b []byte) ([]byte, error) {
	return e.flushChunk(b)
}

// Finish flushes and terminates an unfinished sentence with a period.
func (e *IncrementalEncoder) Finish(b []byte) ([]byte, error) {
	b, err := e.flushChunk(b)
	if err != nil {
		return b, err
	}
	if e.words != 0 {
		b = append(b, '.')
	}
	return b, nil
}

func (e *IncrementalEncoder) flushChunk(b []byte) ([]byte, error) {
	if e.chunkLen == 0 {
		return b, nil
	}
	symbols := encodeChunk(e.symbols[:0], e.chunk[:e.chunkLen])
	e.chunkLen = 0
	for _, s := range symbols {
		w, ok := e.table.Word(s)
		if !ok {
			return b, fmt.Errorf("%w %q", ErrSymbolLookup, s)
		}
		b = e.putWord(b, w)
	}
	return b, nil
}

func (e *IncrementalEncoder) putWord(b []byte, w string) []byte {
	if e.separate {
		b = append(b, ' ')
	}
	e.separate = true
	o := len(b)
	b = append(b, w...)
	if e.capitalize || w == "i" {
		b[o] = toUpper(b[o])
		e.capitalize = false
	}
	e.words++
	if e.words == e.sentenceWords {
		e.words = 0
		b = append(b, '.')
		e.capitalize = true
		e.sentences++
		if e.sentences == e.paragraphSentences {
			e.sentences = 0
			b = append(b, e.lineBreak...)
			b = append(b, e.lineBreak...)
			e.separate = false
		}
	}
	return b
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
