package plainword

// IncrementalDecoder recovers bytes from text produced by the encoder.
// Letter runs that are not vocabulary words are dropped, so any prose,
// digits or punctuation around the encoded words are ignored.
type IncrementalDecoder struct {
	table     *SymbolTable
	token     []byte
	overlong  bool
	group     [4]byte
	groupLen  int
	discarded int
}

func newIncrementalDecoder(o options) *IncrementalDecoder {
	return &IncrementalDecoder{
		table: o.table,
		token: make([]byte, 0, o.table.maxWordLen),
	}
}

func NewIncrementalDecoder(opts ...Option) *IncrementalDecoder {
	return newIncrementalDecoder(newOptions(opts))
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (d *IncrementalDecoder) Decode(b []byte, in []byte) []byte {
	for _, c := range in {
		if isLetter(c) {
			if len(d.token) < cap(d.token) {
				d.token = append(d.token, toLower(c))
			} else {
				// no vocabulary word is this long
				d.overlong = true
			}
			continue
		}
		b = d.endToken(b)
	}
	return b
}

// Flush is called at the end of input. It resolves a pending token and
// decodes a partial symbol group with whatever bytes it still carries.
func (d *IncrementalDecoder) Flush(b []byte) []byte {
	b = d.endToken(b)
	if d.groupLen > 0 {
		b = decodeGroup(b, d.group[:d.groupLen])
		d.groupLen = 0
	}
	return b
}

// Discarded returns the number of tokens dropped so far.
func (d *IncrementalDecoder) Discarded() int {
	return d.discarded
}

func (d *IncrementalDecoder) endToken(b []byte) []byte {
	if len(d.token) == 0 && !d.overlong {
		return b
	}
	s, ok := d.table.Symbol(string(d.token))
	if d.overlong || !ok {
		d.discarded++
	} else {
		d.group[d.groupLen] = s
		d.groupLen++
		if d.groupLen == len(d.group) {
			b = decodeGroup(b, d.group[:])
			d.groupLen = 0
		}
	}
	d.token = d.token[:0]
	d.overlong = false
	return b
}
