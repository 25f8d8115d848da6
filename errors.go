package plainword

import "errors"

var (
	ErrTableIntegrity = errors.New("plainword: symbol table integrity violated")
	ErrSymbolLookup   = errors.New("plainword: no word for symbol")
	ErrClosed         = errors.New("plainword: write to closed writer")
)
