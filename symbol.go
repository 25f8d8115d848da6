package plainword

import (
	"fmt"
	"sync"
)

const padSymbol = '='

// SymbolTable is the bijection between alphabet symbols and vocabulary words.
// It is never mutated after construction and may be shared freely.
type SymbolTable struct {
	symbolToWord [256]string
	wordToSymbol map[string]byte
	maxWordLen   int
}

// NewSymbolTable assigns words, in order, to the symbols A-Z, a-z, 0-9, '+',
// '/' and '='. The error wraps ErrTableIntegrity unless there are exactly 65
// distinct words made of lowercase ASCII letters.
func NewSymbolTable(words []string) (*SymbolTable, error) {
	if len(words) != len(symbolOrder) {
		return nil, fmt.Errorf("%w: expected %d words, got %d", ErrTableIntegrity, len(symbolOrder), len(words))
	}
	t := &SymbolTable{
		wordToSymbol: make(map[string]byte, len(words)),
	}
	for i, w := range words {
		s := symbolOrder[i]
		if !isWord(w) {
			return nil, fmt.Errorf("%w: word %q at %d is not a lowercase word", ErrTableIntegrity, w, i)
		}
		if t.symbolToWord[s] != "" {
			return nil, fmt.Errorf("%w: symbol %q appears more than once", ErrTableIntegrity, s)
		}
		if _, ok := t.wordToSymbol[w]; ok {
			return nil, fmt.Errorf("%w: word %q appears more than once", ErrTableIntegrity, w)
		}
		t.symbolToWord[s] = w
		t.wordToSymbol[w] = s
		if len(w) > t.maxWordLen {
			t.maxWordLen = len(w)
		}
	}
	return t, nil
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

var defaultTable = sync.OnceValues(func() (*SymbolTable, error) {
	return NewSymbolTable(tableWords[:])
})

// DefaultTable returns the table built from the compiled-in vocabulary.
func DefaultTable() *SymbolTable {
	t, err := defaultTable()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *SymbolTable) Word(sym byte) (string, bool) {
	w := t.symbolToWord[sym]
	return w, w != ""
}

func (t *SymbolTable) Symbol(word string) (byte, bool) {
	s, ok := t.wordToSymbol[word]
	return s, ok
}

func (t *SymbolTable) Len() int {
	return len(t.wordToSymbol)
}
