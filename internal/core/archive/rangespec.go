// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeSpec represents a page-range window "min-max" over the filtered
// image list. Both bounds are non-negative and inclusive; the zero value
// is the absent range.
type RangeSpec struct {
	min, max int
	present  bool
}

// ParseRangeSpec parses "min-max" where both are non-negative integers
// and min <= max. An empty string is the absent range. Any other input
// fails with a [KindMalformedRange] error. No upper bound is enforced
// here; out-of-range slicing is reported by [SelectEntries].
func ParseRangeSpec(s string) (RangeSpec, error) {
	if s == "" {
		return RangeSpec{}, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return RangeSpec{}, newError(KindMalformedRange, fmt.Sprintf("malformed page range %q", s), nil)
	}

	min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
	max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errMin != nil || errMax != nil || min < 0 || max < 0 || min > max {
		return RangeSpec{}, newError(KindMalformedRange, fmt.Sprintf("malformed page range %q", s), nil)
	}

	return RangeSpec{min: min, max: max, present: true}, nil
}

// NewRangeSpec constructs a present RangeSpec directly from bounds,
// bypassing string parsing. Used by [ExtractChapters] when it computes
// start/end page indices.
func NewRangeSpec(min, max int) RangeSpec {
	return RangeSpec{min: min, max: max, present: true}
}

// Present reports whether the range was specified.
func (r RangeSpec) Present() bool { return r.present }

// Min returns the lower (inclusive) bound. Only meaningful if Present.
func (r RangeSpec) Min() int { return r.min }

// Max returns the upper (inclusive) bound. Only meaningful if Present.
func (r RangeSpec) Max() int { return r.max }

// String renders the range back as "min-max", or "" when absent — the
// inverse of [ParseRangeSpec], used as half of [FileMetadata.CacheKey].
func (r RangeSpec) String() string {
	if !r.present {
		return ""
	}
	return fmt.Sprintf("%d-%d", r.min, r.max)
}
