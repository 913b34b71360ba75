// Package lexicon provides the word lists that the finder searches. A word
// list is exposed through the Source interface so that the core never cares
// whether the words came from a file on disk or were handed to it in memory.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/rackfinder/cache"
	"github.com/domino14/rackfinder/config"
)

// A Source is a read-only, pre-loaded word list. Entries are uppercase with
// no surrounding whitespace; the load paths guarantee this, since word list
// files in the wild do not document a normalization contract.
type Source interface {
	Name() string
	Words() []string
}

// MemorySource is a Source backed by a slice. Mostly used by tests and by
// callers that embed the finder with their own word list.
type MemorySource struct {
	name  string
	words []string
}

func NewMemorySource(name string, words []string) *MemorySource {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		normalized = append(normalized, w)
	}
	return &MemorySource{name: name, words: normalized}
}

func (m *MemorySource) Name() string {
	return m.name
}

func (m *MemorySource) Words() []string {
	return m.words
}

// FileSource is a Source read from a one-word-per-line text file.
type FileSource struct {
	name  string
	words []string
}

func (f *FileSource) Name() string {
	return f.name
}

func (f *FileSource) Words() []string {
	return f.words
}

// LoadFile reads a word list file. Each line holds one word; blank lines are
// skipped and words are uppercased on the way in.
func LoadFile(filename string) (*FileSource, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	words := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, strings.ToUpper(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	log.Debug().Str("lexicon", name).Int("words", len(words)).Msg("loaded word list")
	return &FileSource{name: name, words: words}, nil
}

// Load loads the named word list from the configured lexicon directory,
// through the global object cache.
func Load(cfg *config.Config, name string) (Source, error) {
	obj, err := cache.Load(cfg, "lexicon:"+name, func(cfg *config.Config, key string) (any, error) {
		filename := filepath.Join(cfg.GetString(config.LexiconPathKey), name+".txt")
		return LoadFile(filename)
	})
	if err != nil {
		return nil, err
	}
	return obj.(Source), nil
}
