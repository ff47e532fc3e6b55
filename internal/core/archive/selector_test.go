// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

func names(entries []archive.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.FullName
	}
	return out
}

func imageEntries(fullNames ...string) []archive.Entry {
	entries := make([]archive.Entry, len(fullNames))
	for i, n := range fullNames {
		entries[i] = archive.Entry{FullName: n}
	}
	return entries
}

/*
TestSelectEntries_S1_CoverElectionFlatArchive is scenario S1: a flat
archive orders pages naturally and places the cover last.
*/
func TestSelectEntries_S1_CoverElectionFlatArchive(t *testing.T) {
	entries := imageEntries("001.jpg", "002.jpg", "cover.jpg")

	meta := archive.FileMetadata{Path: "book.cbz"}
	got, err := archive.SelectEntries(entries, meta, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "cover.jpg"}, names(got))
}

/*
TestSelectEntries_S3_PageRangePreservesCover is scenario S3: a page range
starting at 0 keeps the cover appended at the end; a range not starting at
0 omits it entirely.
*/
func TestSelectEntries_S3_PageRangePreservesCover(t *testing.T) {
	entries := imageEntries("001.jpg", "002.jpg", "003.jpg", "cover.jpg")

	rng, err := archive.ParseRangeSpec("0-1")
	require.NoError(t, err)
	got, err := archive.SelectEntries(entries, archive.FileMetadata{PageRange: rng}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "cover.jpg"}, names(got))

	rng2, err := archive.ParseRangeSpec("1-2")
	require.NoError(t, err)
	got2, err := archive.SelectEntries(entries, archive.FileMetadata{PageRange: rng2}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"002.jpg", "003.jpg"}, names(got2))
}

/*
TestSelectEntries_S4_MacOSJunkFiltered is scenario S4: macOS resource
forks and the __MACOSX folder never contribute pages.
*/
func TestSelectEntries_S4_MacOSJunkFiltered(t *testing.T) {
	entries := imageEntries("001.jpg", "__MACOSX/._001.jpg", "._002.jpg")

	got, err := archive.SelectEntries(entries, archive.FileMetadata{}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg"}, names(got))
}

/*
TestSelectEntries_RawFilterMode verifies that with force_images false and
no page range, non-image entries (like a sidecar) survive.
*/
func TestSelectEntries_RawFilterMode(t *testing.T) {
	entries := imageEntries("001.jpg", "ComicInfo.xml")

	got, err := archive.SelectEntries(entries, archive.FileMetadata{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"001.jpg", "ComicInfo.xml"}, names(got))
}

/*
TestSelectEntries_RangeOutOfBounds fails without clamping when the range
exceeds the filtered image count.
*/
func TestSelectEntries_RangeOutOfBounds(t *testing.T) {
	entries := imageEntries("001.jpg", "002.jpg")

	rng, err := archive.ParseRangeSpec("0-5")
	require.NoError(t, err)

	_, err = archive.SelectEntries(entries, archive.FileMetadata{PageRange: rng}, true)
	require.Error(t, err)
	assert.True(t, err.(*archive.Error).Kind == archive.KindRangeOutOfBounds)
}

/*
TestSelectEntries_EmptyAndDirectoryOnlyArchives verifies no panic on
degenerate archives: empty, or containing only directory entries.
*/
func TestSelectEntries_EmptyAndDirectoryOnlyArchives(t *testing.T) {
	got, err := archive.SelectEntries(nil, archive.FileMetadata{}, true)
	require.NoError(t, err)
	assert.Empty(t, got)

	dirOnly := []archive.Entry{{FullName: "A/", IsDirectory: true}}
	got2, err := archive.SelectEntries(dirOnly, archive.FileMetadata{}, true)
	require.NoError(t, err)
	assert.Empty(t, got2)
}
