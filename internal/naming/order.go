package naming

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/backmassage/reseq/internal/config"
)

// Sort orders names in place according to order. OrderListing leaves the
// slice as the directory enumeration returned it.
func Sort(names []string, order config.Order) {
	switch order {
	case config.OrderName:
		sort.Strings(names)
	case config.OrderNatural:
		slices.SortStableFunc(names, func(a, b string) int {
			switch {
			case NaturalLess(a, b):
				return -1
			case NaturalLess(b, a):
				return 1
			default:
				return 0
			}
		})
	case config.OrderCollate:
		collate.New(language.Und).SortStrings(names)
	}
}

// NaturalLess compares a and b treating runs of ASCII digits as numbers and
// letters case-insensitively, so "clip2.avi" < "clip10.avi". Equal numeric
// values with different zero padding order the shorter run first. Names that
// still tie, such as "Clip2.avi" and "clip2.avi", fall back to byte order.
func NaturalLess(a, b string) bool {
	ai, bi, la, lb := 0, 0, len(a), len(b)
	for ai < la && bi < lb {
		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			startA, startB := ai, bi
			for ai < la && isDigit(a[ai]) {
				ai++
			}
			for bi < lb && isDigit(b[bi]) {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			if runA, runB := ai-startA, bi-startB; runA != runB {
				return runA < runB
			}
			continue
		}

		if lowA, lowB := toLower(ca), toLower(cb); lowA != lowB {
			return lowA < lowB
		}
		ai++
		bi++
	}
	if ra, rb := la-ai, lb-bi; ra != rb {
		return ra < rb
	}
	return a < b
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
