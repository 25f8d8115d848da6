// Package plainword encodes binary data as short English words laid out as
// prose, and decodes such text back into the original bytes.
//
// Bytes are regrouped through the standard base64 alphabet and each of its
// 64 symbols, plus the '=' padding, is replaced by a word:
//
//	Guy any lot lot.
//
// is the encoding of the single byte 0xff. A period follows every tenth word
// and a blank line every tenth sentence. On decoding, any letter run that is
// not a vocabulary word is ignored, as are digits, punctuation and
// whitespace.
package plainword

// Encode returns the text for src.
func Encode(src []byte, opts ...Option) ([]byte, error) {
	e := NewIncrementalEncoder(opts...)
	b, err := e.Encode(make([]byte, 0, len(src)*4), src)
	if err != nil {
		return nil, err
	}
	return e.Finish(b)
}

func EncodeToString(src []byte, opts ...Option) (string, error) {
	b, err := Encode(src, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode returns the bytes carried by the vocabulary words in src.
func Decode(src []byte, opts ...Option) []byte {
	d := NewIncrementalDecoder(opts...)
	return d.Flush(d.Decode(nil, src))
}

func DecodeString(s string, opts ...Option) []byte {
	return Decode([]byte(s), opts...)
}

