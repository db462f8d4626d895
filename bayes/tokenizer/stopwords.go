package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StopWords is an immutable set of words removed from documents before
// counting. The zero value is an empty set.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords returns a set holding the given words. Empty words are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return StopWords{words: set}
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words.
func (s StopWords) Len() int {
	return len(s.words)
}

// Filter removes every occurrence of every stop word from tokens, reusing
// the backing array.
func (s StopWords) Filter(tokens []string) []string {
	if len(s.words) == 0 {
		return tokens
	}

	kept := tokens[:0]
	for _, token := range tokens {
		if !s.Contains(token) {
			kept = append(kept, token)
		}
	}
	return kept
}

// ParseStopWords reads one word per line (LF or CRLF). Words go through the
// tokenizer's normalisation so they match the tokens it emits.
func ParseStopWords(r io.Reader, t *Tokenizer) (StopWords, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if t != nil {
			normalized, err := t.Normalize(word)
			if err != nil {
				return StopWords{}, err
			}
			word = normalized
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return StopWords{}, fmt.Errorf("read stop words: %w", err)
	}

	return NewStopWords(words...), nil
}

// LoadStopWords reads a stop-word file from path.
func LoadStopWords(path string, t *Tokenizer) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return StopWords{}, fmt.Errorf("open stop words: %w", err)
	}
	defer f.Close()

	return ParseStopWords(f, t)
}
