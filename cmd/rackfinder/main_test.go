package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/rackfinder/cache"
	"github.com/domino14/rackfinder/config"
)

func TestValidateRack(t *testing.T) {
	type racktest struct {
		rack string
		ok   bool
	}
	testCases := []racktest{
		{"CAT", true},
		{"cat", true},
		{"AB", true},
		{"ABCDEFG", true},
		{"CA*T?", true},
		{"*?", true},
		{"A", false},        // too short
		{"ABCDEFGH", false}, // too long
		{"A**", false},
		{"A??", false},
		{"C4T", false},
		{"C T", false},
		{"CÑT", false}, // multibyte characters are not tiles
	}
	for _, tc := range testCases {
		err := validateRack(tc.rack)
		if tc.ok {
			assert.NoError(t, err, "rack %v", tc.rack)
		} else {
			assert.Error(t, err, "rack %v", tc.rack)
		}
	}
}

// testConfig writes a word list into a temp dir and loads a config pointed
// at it, with the rest of the command line taken from args.
func testConfig(t *testing.T, words string, args ...string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "small.txt"), []byte(words), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		t.Fatal(err)
	}
	cfg.Set(config.LexiconPathKey, dir)
	cfg.Set(config.DefaultLexiconKey, "small")
	t.Cleanup(func() { cache.Evict("lexicon:small") })
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "CAT\nACT\nAT\nCATS\n", "cat")

	var out bytes.Buffer
	err := run(cfg, &out)
	is.NoErr(err)
	is.Equal(out.String(), "(5, act)\n(5, cat)\n(2, at)\nTotal number of words: 3\n")
}

func TestRunWithConstraint(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t, "MATE\nTEAM\nMEAT\n", "-c", "ma", "TEAM")

	var out bytes.Buffer
	err := run(cfg, &out)
	is.NoErr(err)
	is.Equal(out.String(), "(6, mate)\nTotal number of words: 1\n")
}

func TestRunBadInputs(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer

	cfg := testConfig(t, "CAT\n", "C4T")
	err := run(cfg, &out)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "alphabetic"))

	cfg = testConfig(t, "CAT\n", "-c", "[", "CAT")
	err = run(cfg, &out)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "invalid regex"))

	cfg = testConfig(t, "CAT\n")
	err = run(cfg, &out)
	is.True(err != nil) // no rack at all
}

func TestRunMissingLexicon(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"CAT"}))
	cfg.Set(config.LexiconPathKey, t.TempDir())
	cfg.Set(config.DefaultLexiconKey, "absent")

	var out bytes.Buffer
	err := run(cfg, &out)
	is.True(err != nil)
	// an IO failure is surfaced as-is, not as bad usage
	var uerr *usageError
	is.True(!errors.As(err, &uerr))
}
