// Package config handles plainword.toml CLI configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opencollector/plainword-go"
)

// Config represents a plainword.toml file.
type Config struct {
	Format Format `toml:"format"`
	Log    Log    `toml:"log"`
}

// Format configures the text layout written by the encoder.
type Format struct {
	SentenceWords      int    `toml:"sentence_words"`
	ParagraphSentences int    `toml:"paragraph_sentences"`
	LineBreak          string `toml:"line_break"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

func Default() *Config {
	return &Config{
		Format: Format{
			SentenceWords:      plainword.DefaultSentenceLength,
			ParagraphSentences: plainword.DefaultParagraphLength,
			LineBreak:          plainword.DefaultLineBreak,
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Format.SentenceWords <= 0 {
		return fmt.Errorf("format.sentence_words must be positive, got %d", c.Format.SentenceWords)
	}
	if c.Format.ParagraphSentences <= 0 {
		return fmt.Errorf("format.paragraph_sentences must be positive, got %d", c.Format.ParagraphSentences)
	}
	if c.Format.LineBreak == "" {
		return fmt.Errorf("format.line_break must not be empty")
	}
	if strings.IndexFunc(c.Format.LineBreak, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) >= 0 {
		return fmt.Errorf("format.line_break must not contain letters: %q", c.Format.LineBreak)
	}
	return nil
}

// Options converts the format section to encoder options.
func (c *Config) Options() []plainword.Option {
	return []plainword.Option{
		plainword.WithSentenceLength(c.Format.SentenceWords),
		plainword.WithParagraphLength(c.Format.ParagraphSentences),
		plainword.WithLineBreak(c.Format.LineBreak),
	}
}
