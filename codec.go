package plainword

import "github.com/yyyoichi/bitstream-go"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var alphabetIndex = func() (idx [256]byte) {
	for i := range idx {
		idx[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		idx[alphabet[i]] = byte(i)
	}
	return
}()

// pack lays out the low width bits of each value MSB first.
func pack(values []byte, width int) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i, v := range values {
		for j := 0; j < width; j++ {
			w.WriteBitAt(i*width+j, v&(1<<(width-1-j)) != 0)
		}
	}
	return bitstream.NewBitReader(w.Data(), 0, 0)
}

// unpack reads the value of width bits starting at bit off; bits at or past
// limit read as zero.
func unpack(r *bitstream.BitReader[uint64], off, width, limit int) byte {
	var v byte
	for j := 0; j < width; j++ {
		v <<= 1
		if p := off + j; p < limit {
			if bit, _ := r.ReadBitAt(p); bit {
				v |= 1
			}
		}
	}
	return v
}

// encodeChunk appends the 4 symbols for a chunk of 1 to 3 bytes, padding
// with '=' when the chunk is short. An empty chunk appends nothing.
func encodeChunk(dst []byte, chunk []byte) []byte {
	if len(chunk) == 0 {
		return dst
	}
	if len(chunk) > 3 {
		panic("chunk longer than 3 bytes")
	}
	r := pack(chunk, 8)
	nbits := len(chunk) * 8
	n := (nbits + 5) / 6
	for i := 0; i < n; i++ {
		dst = append(dst, alphabet[unpack(r, i*6, 6, nbits)])
	}
	for i := n; i < 4; i++ {
		dst = append(dst, padSymbol)
	}
	return dst
}

// decodeGroup appends the bytes carried by a group of up to 4 symbols.
// Decoding stops at the first '='; n data symbols carry n*6/8 bytes and the
// leftover low bits are dropped.
func decodeGroup(dst []byte, group []byte) []byte {
	if len(group) > 4 {
		panic("symbol group longer than 4 symbols")
	}
	var values [4]byte
	n := 0
	for _, s := range group {
		if s == padSymbol {
			break
		}
		v := alphabetIndex[s]
		if v == 0xff {
			continue
		}
		values[n] = v
		n++
	}
	if n < 2 {
		return dst
	}
	nbits := n * 6
	r := pack(values[:n], 6)
	for i := 0; i < nbits/8; i++ {
		dst = append(dst, unpack(r, i*8, 8, nbits))
	}
	return dst
}
