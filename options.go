package plainword

type (
	// Option configures the encoding and decoding streams.
	// Formatting options only affect encoding; the decoder ignores layout.
	Option  func(*options)
	options struct {
		table              *SymbolTable
		sentenceWords      int
		paragraphSentences int
		lineBreak          string
	}
)

const (
	DefaultSentenceLength  = 10
	DefaultParagraphLength = 10
	DefaultLineBreak       = "\n"
)

func newOptions(opts []Option) options {
	o := options{
		sentenceWords:      DefaultSentenceLength,
		paragraphSentences: DefaultParagraphLength,
		lineBreak:          DefaultLineBreak,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = DefaultTable()
	}
	return o
}

// WithTable replaces the compiled-in vocabulary. Both sides of a stream must
// use the same table.
func WithTable(t *SymbolTable) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithSentenceLength sets the number of words after which a period is written.
func WithSentenceLength(n int) Option {
	if n <= 0 {
		panic("sentence length must be positive")
	}
	return func(o *options) {
		o.sentenceWords = n
	}
}

// WithParagraphLength sets the number of sentences after which a paragraph
// break is written.
func WithParagraphLength(n int) Option {
	if n <= 0 {
		panic("paragraph length must be positive")
	}
	return func(o *options) {
		o.paragraphSentences = n
	}
}

// WithLineBreak sets the line separator; a paragraph break is two of them.
func WithLineBreak(s string) Option {
	if s == "" {
		panic("line break must not be empty")
	}
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			panic("line break must not contain letters")
		}
	}
	return func(o *options) {
		o.lineBreak = s
	}
}
