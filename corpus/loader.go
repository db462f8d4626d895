package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/hickeroar/bayeseval/bayes/document"
	"github.com/hickeroar/bayeseval/bayes/tokenizer"
)

// DefaultStopWordsFile is the stop-word list location relative to a class
// directory.
const DefaultStopWordsFile = "../uselessWords.txt"

// LoadOptions controls how a dataset directory is turned into a Corpus.
type LoadOptions struct {
	Classes       []string             // Class names, matched against directory names
	Tokenizer     *tokenizer.Tokenizer // Plain whitespace tokenizer when nil
	StopWordsFile string               // Relative to each class directory, DefaultStopWordsFile when empty
	Shuffle       bool                 // Shuffle each class directory's files before loading
	Seed          uint64               // Shuffle seed, a random seed when zero
	Logger        *slog.Logger
}

// Load walks root and adds one document per regular file found directly in
// a directory named after a class. Files are read in name order unless
// Shuffle is set. A stop-word list that cannot be read is ignored.
func Load(ctx context.Context, root string, opts LoadOptions) (*Corpus, error) {
	c, err := New(opts.Classes...)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	tok := opts.Tokenizer
	if tok == nil {
		if tok, err = tokenizer.New(tokenizer.Options{}); err != nil {
			return nil, err
		}
	}
	stopFile := opts.StopWordsFile
	if stopFile == "" {
		stopFile = DefaultStopWordsFile
	}

	var rng *rand.Rand
	if opts.Shuffle {
		seed := opts.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		class := d.Name()
		if _, ok := c.docs[class]; !ok {
			return nil
		}

		log.Debug("loading class directory", "class", class, "path", path)
		return loadClassDir(ctx, c, class, path, stopFile, tok, rng, log)
	})
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", root, err)
	}

	return c, nil
}

func loadClassDir(ctx context.Context, c *Corpus, class, dir, stopFile string, tok *tokenizer.Tokenizer, rng *rand.Rand, log *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	if rng != nil {
		rng.Shuffle(len(files), func(i, j int) { files[i], files[j] = files[j], files[i] })
	}

	stopPath := filepath.Join(dir, stopFile)
	stop, err := tokenizer.LoadStopWords(stopPath, tok)
	if err != nil {
		log.Debug("stop words unavailable, skipping removal", "path", stopPath, "error", err)
		stop = tokenizer.StopWords{}
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		doc, err := document.FromText(class, string(content), tok, stop)
		if err != nil {
			return fmt.Errorf("document %s: %w", name, err)
		}
		if err := c.Add(doc); err != nil {
			return err
		}
	}

	log.Debug("class directory loaded", "class", class, "documents", len(files), "stop_words", stop.Len())
	return nil
}
