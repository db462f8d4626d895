package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTokenizer(t *testing.T, opts Options) *Tokenizer {
	t.Helper()
	tok, err := New(opts)
	require.NoError(t, err)
	return tok
}

func TestTokenizePlainMode(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		text string
		want []string
	}{
		{
			name: "whitespace split only",
			opts: Options{},
			text: "Good  movie\tgood\nACTING",
			want: []string{"Good", "movie", "good", "ACTING"},
		},
		{
			name: "lowercase",
			opts: Options{Lowercase: true},
			text: "Good movie GOOD",
			want: []string{"good", "movie", "good"},
		},
		{
			name: "strip punctuation",
			opts: Options{Lowercase: true, StripPunctuation: true},
			text: "It's great, really great!!! (9/10)",
			want: []string{"its", "great", "really", "great", "910"},
		},
		{
			name: "punctuation only words disappear",
			opts: Options{StripPunctuation: true},
			text: "yes -- no ...",
			want: []string{"yes", "no"},
		},
		{
			name: "non ascii punctuation kept",
			opts: Options{StripPunctuation: true},
			text: "«bien» café",
			want: []string{"«bien»", "café"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := mustTokenizer(t, tt.opts)
			got, err := tok.Tokenize(tt.text, StopWords{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeTaggedModeSkipsMalformedLines(t *testing.T) {
	tok := mustTokenizer(t, Options{Tagged: true})
	text := strings.Join([]string{
		"The\tDET\tthe",
		"movies\tNOUN\tmovie",
		"malformed line",
		"only\ttwo",
		"were\tVERB\tbe\textra",
		"",
		"good\tADJ\tgood\r",
	}, "\n")

	got, err := tok.Tokenize(text, StopWords{})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "movie", "be", "good"}, got)
}

func TestTokenizeTaggedModeKeepsEmptyLemmas(t *testing.T) {
	tok := mustTokenizer(t, Options{Tagged: true, Lowercase: true, StripPunctuation: true, StemLanguage: "english"})

	got, err := tok.Tokenize("Good\tADJ\tgood\n.\tSENT\t.\nx\ty\t\n", StopWords{})
	require.NoError(t, err)

	// "." strips to "" and the third line has an empty lemma column; both
	// count as tokens, only the trailing empty line is dropped.
	assert.Equal(t, []string{"good", "", ""}, got)
}

func TestTokenizeTaggedModeCustomField(t *testing.T) {
	tok := mustTokenizer(t, Options{Tagged: true, TaggedField: 1})
	got, err := tok.Tokenize("a\tb\tc\nd\te", StopWords{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e"}, got)
}

func TestTokenizeRemovesEveryStopWordOccurrence(t *testing.T) {
	tok := mustTokenizer(t, Options{Lowercase: true})
	stop := NewStopWords("the", "a", "missing")

	got, err := tok.Tokenize("The cat and the dog saw a bird", stop)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "and", "dog", "saw", "bird"}, got)
}

func TestTokenizeStemming(t *testing.T) {
	tok := mustTokenizer(t, Options{Lowercase: true, StemLanguage: "English"})
	got, err := tok.Tokenize("running runs", StopWords{})
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "run"}, got)
	assert.Equal(t, "english", tok.Options().StemLanguage)
}

func TestNewRejectsUnknownLanguage(t *testing.T) {
	_, err := New(Options{StemLanguage: "klingon"})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestParseStopWordsHandlesCRLFAndNormalises(t *testing.T) {
	tok := mustTokenizer(t, Options{Lowercase: true, StripPunctuation: true})
	stop, err := ParseStopWords(strings.NewReader("The\r\nDon't\r\n\r\nand\n"), tok)
	require.NoError(t, err)

	assert.Equal(t, 3, stop.Len())
	for _, word := range []string{"the", "dont", "and"} {
		assert.True(t, stop.Contains(word), "expected %q to be a stop word", word)
	}
	assert.False(t, stop.Contains(""), "empty line must not become a stop word")
}

func TestLoadStopWordsMissingFile(t *testing.T) {
	_, err := LoadStopWords(filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStopWordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uselessWords.txt")
	require.NoError(t, os.WriteFile(path, []byte("le\r\nla\r\nles"), 0o644))

	stop, err := LoadStopWords(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stop.Len())
	assert.True(t, stop.Contains("les"))
}

func FuzzTokenizePlainNeverEmitsEmptyTokens(f *testing.F) {
	f.Add("hello world")
	f.Add("a\tb\tc\n\t\t\n")
	f.Add("!!! ...")

	f.Fuzz(func(t *testing.T, text string) {
		tok := mustTokenizer(t, Options{Lowercase: true, StripPunctuation: true})
		tokens, err := tok.Tokenize(text, NewStopWords("the"))
		require.NoError(t, err)
		for _, token := range tokens {
			require.NotEmpty(t, token, "tokenizer emitted an empty token")
			require.NotEqual(t, "the", token, "stop word survived filtering")
		}
	})
}

func FuzzTokenizeTaggedOneTokenPerWellFormedLine(f *testing.F) {
	f.Add("a\tb\tc\n\t\t\n")
	f.Add(".\tSENT\t.\r\nbroken\n")

	f.Fuzz(func(t *testing.T, text string) {
		tok := mustTokenizer(t, Options{Tagged: true, Lowercase: true, StripPunctuation: true})
		normalized, err := tok.Normalize(text)
		require.NoError(t, err)

		want := 0
		for _, line := range strings.Split(normalized, "\n") {
			if len(strings.Split(strings.TrimSuffix(line, "\r"), "\t")) > DefaultTaggedField {
				want++
			}
		}

		tokens, err := tok.Tokenize(text, StopWords{})
		require.NoError(t, err)
		require.Len(t, tokens, want)
	})
}
