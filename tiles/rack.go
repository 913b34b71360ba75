// Package tiles models a player's tile rack and the per-tile score values of
// a letter distribution.
package tiles

const (
	// NumLetters is the number of distinct tiles in the English alphabet,
	// not counting wildcards.
	NumLetters = 26

	// The two wildcard markers. A rack may carry at most one of each; a
	// wildcard stands in for any letter and scores zero.
	WildcardStar  = '*'
	WildcardBlank = '?'
)

// Rack is a letter-count view of a rack string. The wildcard markers are
// counted separately from the alphabetic tiles. It assumes the rack string
// has already been validated (uppercase letters plus at most one of each
// wildcard marker); construction has no error paths.
type Rack struct {
	letArr    [NumLetters]int
	wildcards int
	numTiles  int
	repr      string
}

// RackFromString creates a Rack from a validated rack string.
func RackFromString(rack string) *Rack {
	r := &Rack{repr: rack, numTiles: len(rack)}
	for i := 0; i < len(rack); i++ {
		switch c := rack[i]; c {
		case WildcardStar, WildcardBlank:
			r.wildcards++
		default:
			r.letArr[c-'A']++
		}
	}
	return r
}

// String returns the rack as the user entered it, uppercased.
func (r *Rack) String() string {
	return r.repr
}

// NumTiles returns the total number of tiles on the rack, wildcards included.
func (r *Rack) NumTiles() int {
	return r.numTiles
}

// NumWildcards returns the number of wildcard markers on the rack (0 to 2).
func (r *Rack) NumWildcards() int {
	return r.wildcards
}

// CountOf returns how many tiles of the given letter the rack holds. Any
// character outside A-Z counts zero.
func (r *Rack) CountOf(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return r.letArr[letter-'A']
}

// Has returns whether at least one tile of the given letter is on the rack.
func (r *Rack) Has(letter byte) bool {
	return r.CountOf(letter) > 0
}

// Empty returns whether the rack has no alphabetic tiles at all. This is the
// all-wildcards rack; it is not the same as NumTiles() == 0.
func (r *Rack) Empty() bool {
	return r.numTiles == r.wildcards
}

// Letters returns the distinct letters present on the rack, in alphabetical
// order.
func (r *Rack) Letters() []byte {
	letters := []byte{}
	for i, ct := range r.letArr {
		if ct > 0 {
			letters = append(letters, byte('A'+i))
		}
	}
	return letters
}
