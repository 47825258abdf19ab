package model1

import (
	"strings"
	"unicode"
)

// Rank tiers, best first. A scattered subsequence scores RankMatches plus a
// closeness fraction in (0, 1).
const (
	RankCaseSensitiveEqual float64 = 7
	RankEqual              float64 = 6
	RankStartsWith         float64 = 5
	RankWordStartsWith     float64 = 4
	RankContains           float64 = 3
	RankAcronym            float64 = 2
	RankMatches            float64 = 1
	RankNoMatch            float64 = 0

	// RankNeutral is handed out when there is nothing to match against.
	RankNeutral float64 = 0
)

// Ranking is the outcome of matching one value against a query.
type Ranking struct {
	Passed bool
	Rank   float64
}

// Match scores value against query. Matching ignores case and accepts any
// in-order subsequence of the query's characters.
func Match(value, query string) Ranking {
	if query == "" {
		return Ranking{Passed: true, Rank: RankNeutral}
	}
	r := rank(value, query)
	return Ranking{Passed: r > RankNoMatch, Rank: r}
}

func rank(value, query string) float64 {
	if len([]rune(query)) > len([]rune(value)) {
		return RankNoMatch
	}
	if value == query {
		return RankCaseSensitiveEqual
	}

	v, q := strings.ToLower(value), strings.ToLower(query)
	switch {
	case v == q:
		return RankEqual
	case strings.HasPrefix(v, q):
		return RankStartsWith
	case strings.Contains(v, " "+q):
		return RankWordStartsWith
	case strings.Contains(v, q):
		return RankContains
	case len([]rune(q)) == 1:
		return RankNoMatch
	case strings.Contains(acronym(v), q):
		return RankAcronym
	}

	return closeness(v, q)
}

// acronym collects the first rune of every space or dash separated word.
func acronym(s string) string {
	var b strings.Builder
	for _, w := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	}) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
	}

	return b.String()
}

// closeness walks the query as a subsequence of value and rewards a tight
// spread between the first and last matched rune.
func closeness(value, query string) float64 {
	vv, qq := []rune(value), []rune(query)
	first, last, at := -1, -1, 0
	for _, q := range qq {
		found := false
		for ; at < len(vv); at++ {
			if vv[at] == q {
				if first < 0 {
					first = at
				}
				last, found = at, true
				at++
				break
			}
		}
		if !found {
			return RankNoMatch
		}
	}
	spread := last - first
	if spread < 1 {
		spread = 1
	}

	return RankMatches + 1/float64(spread+1)
}

// RankedRow pairs a row with the per column ranks from the last filter.
// Ranks is nil when no filter was applied.
type RankedRow struct {
	Row
	Ranks []float64
}

// RankAt returns the stored rank for col.
func (r RankedRow) RankAt(col int) (float64, bool) {
	if r.Ranks == nil || col < 0 || col >= len(r.Ranks) {
		return 0, false
	}
	return r.Ranks[col], true
}

// SortByRank orders a before b. Stored ranks win when they differ, higher
// first. Otherwise the col values are compared alphanumerically.
func SortByRank(a, b RankedRow, col int, numeric bool) int {
	ra, okA := a.RankAt(col)
	rb, okB := b.RankAt(col)
	if okA && okB && ra != rb {
		if ra > rb {
			return -1
		}
		return 1
	}

	var va, vb string
	if col >= 0 && col < len(a.Fields) {
		va = a.Fields[col]
	}
	if col >= 0 && col < len(b.Fields) {
		vb = b.Fields[col]
	}

	return Compare(numeric, va, vb)
}
