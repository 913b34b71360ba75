package finder

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FormatResults renders ranked results for output: one "(score, word)" line
// per result with the word lowercased, then a summary line with the total.
func FormatResults(results []ScoredWord) []string {
	lines := lo.Map(results, func(r ScoredWord, _ int) string {
		return fmt.Sprintf("(%d, %s)", r.Score, strings.ToLower(r.Word))
	})
	return append(lines, fmt.Sprintf("Total number of words: %d", len(results)))
}
