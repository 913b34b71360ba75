package tiles

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/domino14/rackfinder/cache"
	"github.com/domino14/rackfinder/config"
)

//go:embed data/english.csv
var englishCSV string

// LetterDistribution encodes the tile inventory for a game: how many of each
// tile exist and what each one scores. Only the scores matter to the finder;
// the quantities and vowel flags ride along for callers that want to deal
// racks or build bags.
type LetterDistribution struct {
	Name string

	scores       [NumLetters]int
	distribution [NumLetters]uint8
	vowels       []byte
	numBlanks    uint8
}

// ScanLetterDistribution reads a letter,quantity,value,vowel CSV. A row whose
// letter is the wildcard marker describes the blank tiles; it always scores
// zero.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	ld := &LetterDistribution{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := record[0]
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if letter == string(WildcardBlank) {
			ld.numBlanks = uint8(n)
			continue
		}
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return nil, fmt.Errorf("unsupported letter in distribution: %v", letter)
		}
		idx := letter[0] - 'A'
		ld.distribution[idx] = uint8(n)
		ld.scores[idx] = p
		if v == 1 {
			ld.vowels = append(ld.vowels, letter[0])
		}
	}
	return ld, nil
}

// Score gives the score of the given character. Characters that are not
// uppercase letters (wildcards, lowercase, punctuation) score 0.
func (ld *LetterDistribution) Score(c byte) int {
	if c < 'A' || c > 'Z' {
		return 0
	}
	return ld.scores[c-'A']
}

// WordScore returns the raw score of a word: the per-letter sum with no
// wildcard accounting.
func (ld *LetterDistribution) WordScore(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		score += ld.Score(word[i])
	}
	return score
}

// NumberOf returns how many tiles of the given letter the distribution has.
func (ld *LetterDistribution) NumberOf(c byte) uint8 {
	if c < 'A' || c > 'Z' {
		return 0
	}
	return ld.distribution[c-'A']
}

// NumBlanks returns the number of blank tiles in the distribution.
func (ld *LetterDistribution) NumBlanks() uint8 {
	return ld.numBlanks
}

// Vowels returns the vowels of the distribution, in alphabetical order.
func (ld *LetterDistribution) Vowels() []byte {
	return ld.vowels
}

// EnglishLetterDistribution returns the standard English distribution, built
// from an embedded copy so the binary works with no data directory at all.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(err)
	}
	ld.Name = "english"
	return ld
}

// NamedLetterDistribution loads the named distribution from the configured
// data directory, through the global object cache. The embedded English
// distribution is used as a fallback when no file exists for "english".
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	obj, err := cache.Load(cfg, "letterdist:"+name, func(cfg *config.Config, key string) (any, error) {
		filename := filepath.Join(cfg.GetString(config.LetterDistributionPathKey), name+".csv")
		f, err := os.Open(filename)
		if err != nil {
			if name == "english" && os.IsNotExist(err) {
				return EnglishLetterDistribution(), nil
			}
			return nil, fmt.Errorf("opening letter distribution: %w", err)
		}
		defer f.Close()
		ld, err := ScanLetterDistribution(f)
		if err != nil {
			return nil, err
		}
		ld.Name = name
		return ld, nil
	})
	if err != nil {
		return nil, err
	}
	return obj.(*LetterDistribution), nil
}
