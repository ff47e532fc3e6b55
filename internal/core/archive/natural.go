// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import "sort"

// NaturalLess totally orders two strings by scanning in parallel: maximal
// digit runs compare as integers (leading zeros ignored), non-digit
// segments compare by Unicode code point. On a numeric tie the longer
// digit run (the one with more leading zeros) sorts first — this is the
// one deliberately non-standard tie-break this package requires, and the
// reason it hand-rolls the comparator instead of depending on
// github.com/fvbommel/sortorder (see DESIGN.md).
//
// NaturalLess is a free function, not a string method, so property tests
// (reflexivity, antisymmetry, transitivity, randomized monotonicity) can
// exercise it directly without going through a wrapper type.
func NaturalLess(a, b string) bool {
	return compareNatural(a, b) < 0
}

// compareNatural returns -1, 0, or 1 the way strings.Compare does, using
// natural order.
func compareNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			aStart, bStart := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			runA, runB := a[aStart:i], b[bStart:j]

			if cmp := compareDigitRuns(runA, runB); cmp != 0 {
				return cmp
			}
			continue
		}

		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

// compareDigitRuns compares two runs of digit characters numerically,
// ignoring leading zeros; ties break by longer run first (more leading
// zeros sorts first).
func compareDigitRuns(a, b string) int {
	trimmedA := trimLeadingZeros(a)
	trimmedB := trimLeadingZeros(b)

	if len(trimmedA) != len(trimmedB) {
		if len(trimmedA) < len(trimmedB) {
			return -1
		}
		return 1
	}
	if trimmedA != trimmedB {
		if trimmedA < trimmedB {
			return -1
		}
		return 1
	}
	// Numerically equal: the run with more digits (more leading zeros)
	// sorts first.
	if len(a) != len(b) {
		if len(a) > len(b) {
			return -1
		}
		return 1
	}
	return 0
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SortNatural sorts items in place by natural order of key(item),
// stably, matching sort.SliceStable's guarantees.
func SortNatural[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return NaturalLess(key(items[i]), key(items[j]))
	})
}
