// Package finder implements the rack-to-words search. Instead of enumerating
// the words a rack could spell, it walks the word list and aggressively
// eliminates entries, cheapest test first; the few survivors get an exact
// assembly-and-scoring pass.
package finder

import (
	"regexp"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/rackfinder/lexicon"
	"github.com/domino14/rackfinder/tiles"
)

// ScoredWord is one search result: a playable word and its net score after
// wildcard substitutions.
type ScoredWord struct {
	Score int
	Word  string
}

// Finder searches a word list for every word that can be assembled from one
// rack. It is single-use per rack; nothing is retained between searches
// except the rack and distribution it was built with.
type Finder struct {
	rack       *tiles.Rack
	dist       *tiles.LetterDistribution
	constraint *regexp.Regexp
	threads    int
}

func NewFinder(rack *tiles.Rack, dist *tiles.LetterDistribution) *Finder {
	return &Finder{rack: rack, dist: dist, threads: 1}
}

// SetConstraint restricts results to words matching re. The expression must
// be anchored at the start of the word; CompileConstraint builds one from a
// user-supplied pattern.
func (f *Finder) SetConstraint(re *regexp.Regexp) {
	f.constraint = re
}

// SetThreads splits the search across t workers. Results are identical to
// the single-threaded search; each word's evaluation is independent and the
// final ranking imposes a total order.
func (f *Finder) SetThreads(t int) {
	if t < 1 {
		t = 1
	}
	f.threads = t
}

// CompileConstraint compiles a user pattern so that it is case-insensitive
// and must match at the beginning of a candidate word, not anywhere inside
// it.
func CompileConstraint(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\A(?:` + pattern + `)`)
}

// admissible runs the cheap elimination phases, in order of increasing cost.
// A word that fails any phase is rejected without running the later ones.
func (f *Finder) admissible(word string) bool {
	// Phase 1: a word longer than the rack can never be assembled.
	if len(word) > f.rack.NumTiles() {
		return false
	}
	// Phase 2: count characters the rack has no tile for. Strictly more of
	// them than we have wildcards kills the word. Whether the rack's letter
	// counts actually cover the word is deliberately not checked here; that
	// is the assembly pass's job. A rack of nothing but wildcards skips this
	// phase, since no character can be excluded.
	if !f.rack.Empty() {
		missing := 0
		for i := 0; i < len(word); i++ {
			if !f.rack.Has(word[i]) {
				missing++
				if missing > f.rack.NumWildcards() {
					return false
				}
			}
		}
	}
	// Phase 3: the user's constraint, if any.
	if f.constraint != nil && !f.constraint.MatchString(word) {
		return false
	}
	return true
}

// letterNeed is one distinct character of a candidate word, with its tile
// value and the number of copies the word requires.
type letterNeed struct {
	char  byte
	value int
	count int
}

// unpack decomposes a word into letterNeeds sorted by descending tile value,
// so that the assembly pass spends wildcards on the most expensive
// shortfalls first.
func (f *Finder) unpack(word string) []letterNeed {
	counts := map[byte]int{}
	for i := 0; i < len(word); i++ {
		counts[word[i]]++
	}
	needs := make([]letterNeed, 0, len(counts))
	for c, n := range counts {
		needs = append(needs, letterNeed{char: c, value: f.dist.Score(c), count: n})
	}
	sort.Slice(needs, func(i, j int) bool {
		if needs[i].value != needs[j].value {
			return needs[i].value > needs[j].value
		}
		return needs[i].char < needs[j].char
	})
	return needs
}

// evaluate verifies that a word surviving the filter phases can actually be
// assembled from the rack's letter counts plus its wildcards, and returns
// the net score. Wildcards score zero, so every letter a wildcard covers is
// deducted from the word's raw score. The wildcard budget is private to this
// one evaluation.
func (f *Finder) evaluate(word string) (int, bool) {
	wildcards := f.rack.NumWildcards()
	delta := 0
	for _, need := range f.unpack(word) {
		have := f.rack.CountOf(need.char)
		switch {
		case have >= need.count:
			// covered by rack tiles alone
		case have+wildcards >= need.count:
			wildcards -= need.count - have
			delta += (need.count - have) * need.value
		default:
			return 0, false
		}
	}
	return f.dist.WordScore(word) - delta, true
}

// Search runs the full pipeline over src and returns the results ranked by
// descending score, ties broken alphabetically.
func (f *Finder) Search(src lexicon.Source) []ScoredWord {
	words := src.Words()
	var results []ScoredWord
	if f.threads > 1 {
		results = f.searchParallel(words)
	} else {
		results = f.searchRange(words)
	}
	rank(results)
	log.Debug().
		Str("rack", f.rack.String()).
		Str("lexicon", src.Name()).
		Int("candidates", len(words)).
		Int("results", len(results)).
		Msg("search done")
	return results
}

func (f *Finder) searchRange(words []string) []ScoredWord {
	results := []ScoredWord{}
	for _, w := range words {
		if !f.admissible(w) {
			continue
		}
		if score, ok := f.evaluate(w); ok {
			results = append(results, ScoredWord{Score: score, Word: w})
		}
	}
	return results
}

// searchParallel shards the word list across f.threads workers. Workers
// share nothing but the read-only rack and distribution.
func (f *Finder) searchParallel(words []string) []ScoredWord {
	shards := make([][]ScoredWord, f.threads)
	chunk := (len(words) + f.threads - 1) / f.threads
	g := errgroup.Group{}
	for t := 0; t < f.threads; t++ {
		t := t
		g.Go(func() error {
			start := t * chunk
			if start >= len(words) {
				return nil
			}
			shards[t] = f.searchRange(words[start:min(start+chunk, len(words))])
			return nil
		})
	}
	// the workers have no error paths
	_ = g.Wait()

	results := []ScoredWord{}
	for _, s := range shards {
		results = append(results, s...)
	}
	return results
}

// rank sorts results by score descending, then word ascending. A single
// compound comparator, so we do not depend on sort stability.
func rank(results []ScoredWord) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word < results[j].Word
	})
}
