// Package tokenizer turns raw document text into the word sequence the
// classifier counts. It understands plain whitespace separated text and
// tab-tagged corpora where one column of every line carries the token.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTaggedField is the tab-delimited column holding the token (lemma)
// in tagged corpora.
const DefaultTaggedField = 2

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ErrUnsupportedLanguage is returned when the stemming language is not known
// to the snowball stemmer.
var ErrUnsupportedLanguage = errors.New("unsupported stemming language")

// Options controls how text is reduced to tokens.
type Options struct {
	Tagged           bool   // Read one token per line from a tab-delimited column
	TaggedField      int    // Column index for tagged mode, DefaultTaggedField when <= 0
	Lowercase        bool   // Lower-case text before splitting
	StripPunctuation bool   // Remove ASCII punctuation before splitting
	StemLanguage     string // Snowball language used to stem tokens, empty disables stemming
}

// Tokenizer splits text according to its Options. It is safe for concurrent use.
type Tokenizer struct {
	opts Options
}

// New returns a Tokenizer for the given options.
func New(opts Options) (*Tokenizer, error) {
	if opts.TaggedField <= 0 {
		opts.TaggedField = DefaultTaggedField
	}
	opts.StemLanguage = strings.ToLower(strings.TrimSpace(opts.StemLanguage))
	if opts.StemLanguage != "" {
		if _, err := snowball.Stem("probe", opts.StemLanguage, true); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, opts.StemLanguage)
		}
	}

	return &Tokenizer{opts: opts}, nil
}

// Options returns the effective options of the tokenizer.
func (t *Tokenizer) Options() Options {
	return t.opts
}

// Normalize applies Unicode normalisation and the configured case and
// punctuation rules to text without splitting it.
func (t *Tokenizer) Normalize(text string) (string, error) {
	chain := []transform.Transformer{norm.NFC}
	if t.opts.Lowercase {
		chain = append(chain, cases.Lower(language.Und))
	}
	if t.opts.StripPunctuation {
		chain = append(chain, runes.Remove(runes.Predicate(isASCIIPunctuation)))
	}

	normalized, _, err := transform.String(transform.Chain(chain...), text)
	if err != nil {
		return "", fmt.Errorf("normalize text: %w", err)
	}
	return normalized, nil
}

// Tokenize normalises text, splits it into tokens, drops every occurrence
// of the stop words and stems what remains.
func (t *Tokenizer) Tokenize(text string, stop StopWords) ([]string, error) {
	normalized, err := t.Normalize(text)
	if err != nil {
		return nil, err
	}

	var tokens []string
	if t.opts.Tagged {
		tokens = t.splitTagged(normalized)
	} else {
		tokens = strings.Fields(normalized)
	}

	tokens = stop.Filter(tokens)

	if t.opts.StemLanguage != "" {
		for i, token := range tokens {
			if token == "" {
				continue
			}
			stemmed, err := snowball.Stem(token, t.opts.StemLanguage, true)
			if err != nil {
				return nil, fmt.Errorf("stem %q: %w", token, err)
			}
			tokens[i] = stemmed
		}
	}

	return tokens, nil
}

// splitTagged takes the configured column of every line. Lines with too few
// columns are malformed and skipped. An empty column is kept as an empty
// token: a punctuation lemma stripped to "" still counts as a word.
func (t *Tokenizer) splitTagged(text string) []string {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
		if len(fields) <= t.opts.TaggedField {
			continue
		}
		tokens = append(tokens, fields[t.opts.TaggedField])
	}
	return tokens
}

func isASCIIPunctuation(r rune) bool {
	return r < 0x80 && strings.ContainsRune(asciiPunctuation, r)
}
