// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buivan/yomira/internal/core/archive"
)

/*
TestNaturalLess_DigitRuns checks numeric comparison of digit runs
embedded in otherwise textual filenames.
*/
func TestNaturalLess_DigitRuns(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"single_digit_order", "2.jpg", "10.jpg", true},
		{"equal_strings", "page.jpg", "page.jpg", false},
		{"text_before_digit", "cover.jpg", "001.jpg", false},
		{"prefix_shorter_wins", "page", "page1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.NaturalLess(tt.a, tt.b))
		})
	}
}

/*
TestNaturalLess_LeadingZeroTieBreak encodes spec's non-standard tie-break:
among numerically-equal digit runs, the run written with more digits (more
leading zeros) sorts first.
*/
func TestNaturalLess_LeadingZeroTieBreak(t *testing.T) {
	assert.True(t, archive.NaturalLess("001.jpg", "01.jpg"))
	assert.True(t, archive.NaturalLess("01.jpg", "1.jpg"))
	assert.False(t, archive.NaturalLess("1.jpg", "001.jpg"))
}

/*
TestNaturalLess_Antisymmetric is a randomized antisymmetry check per
spec's requirement that natural order be reflexive, antisymmetric, and
transitive.
*/
func TestNaturalLess_Antisymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("abc012 .")

	randomString := func() string {
		n := rng.Intn(8) + 1
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(buf)
	}

	for i := 0; i < 500; i++ {
		a, b := randomString(), randomString()
		lt := archive.NaturalLess(a, b)
		gt := archive.NaturalLess(b, a)
		if a == b {
			assert.False(t, lt)
			assert.False(t, gt)
			continue
		}
		assert.False(t, lt && gt, "both %q<%q and %q<%q reported true", a, b, b, a)
	}
}

/*
TestSortNatural_Stable verifies SortNatural produces a fully-ordered
sequence for a realistic page-name set.
*/
func TestSortNatural_Stable(t *testing.T) {
	items := []string{"010.jpg", "2.jpg", "1.jpg", "cover.jpg", "003.jpg"}
	archive.SortNatural(items, func(s string) string { return s })

	assert.True(t, sort.SliceIsSorted(items, func(i, j int) bool {
		return archive.NaturalLess(items[i], items[j]) || items[i] == items[j]
	}))
}
