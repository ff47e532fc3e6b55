// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

func TestParseRangeSpec(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMin   int
		wantMax   int
		wantAbs   bool
		expectErr bool
	}{
		{"empty_is_absent", "", 0, 0, true, false},
		{"valid_range", "3-7", 3, 7, false, false},
		{"single_point", "0-0", 0, 0, false, false},
		{"min_greater_than_max", "7-3", 0, 0, false, true},
		{"negative", "-1-3", 0, 0, false, true},
		{"non_numeric", "a-b", 0, 0, false, true},
		{"missing_dash", "7", 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := archive.ParseRangeSpec(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, archive.KindMalformedRange, err.(*archive.Error).Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAbs, !rng.Present())
			if rng.Present() {
				assert.Equal(t, tt.wantMin, rng.Min())
				assert.Equal(t, tt.wantMax, rng.Max())
			}
		})
	}
}

func TestRangeSpec_StringRoundTrip(t *testing.T) {
	rng, err := archive.ParseRangeSpec("2-9")
	require.NoError(t, err)
	assert.Equal(t, "2-9", rng.String())

	var absent archive.RangeSpec
	assert.Equal(t, "", absent.String())
}
