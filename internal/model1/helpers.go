package model1

import (
	"strconv"
	"strings"

	"github.com/fvbommel/sortorder"
)

// Less returns true if v1 <= v2
func Less(isNumber bool, id1, id2, v1, v2 string) bool {
	if v1 == v2 {
		return sortorder.NaturalLess(id1, id2)
	}
	if isNumber {
		return lessNumber(v1, v2)
	}
	return sortorder.NaturalLess(v1, v2)
}

// Compare orders two cell values, -1, 0 or 1.
func Compare(isNumber bool, v1, v2 string) int {
	switch {
	case v1 == v2:
		return 0
	case isNumber && lessNumber(v1, v2):
		return -1
	case isNumber:
		return 1
	case sortorder.NaturalLess(v1, v2):
		return -1
	case sortorder.NaturalLess(v2, v1):
		return 1
	default:
		return 0
	}
}

func lessNumber(s1, s2 string) bool {
	f1, ok1 := toNumber(s1)
	f2, ok2 := toNumber(s2)
	if ok1 && ok2 {
		return f1 < f2
	}
	return sortorder.NaturalLess(s1, s2)
}

// toNumber reads formatted numbers such as "1,234" or "₱1,234.50".
func toNumber(s string) (float64, bool) {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
