// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

/*
TestFindCover_S1_ExplicitCover is scenario S1: an explicit cover.jpg wins
over natural-order position.
*/
func TestFindCover_S1_ExplicitCover(t *testing.T) {
	images := imageEntries("001.jpg", "002.jpg", "cover.jpg")

	got, ok := archive.FindCover(images)
	require.True(t, ok)
	assert.Equal(t, "cover.jpg", got.FullName)
}

/*
TestFindCover_S2_NoExplicitCover is scenario S2: without a cover
candidate, the first image by natural order within the archive's only
directory is elected.
*/
func TestFindCover_S2_NoExplicitCover(t *testing.T) {
	images := imageEntries("A/001.jpg", "A/002.jpg")

	got, ok := archive.FindCover(images)
	require.True(t, ok)
	assert.Equal(t, "A/001.jpg", got.FullName)
}

/*
TestFindCover_RootBeatsSubfolder verifies tier 2: a root-level image wins
over an explicit cover buried in a subfolder is NOT the case — tier 1
always wins first. This test checks tier 2 in isolation: no cover
candidate exists, but one image sits at root among several in subfolders.
*/
func TestFindCover_RootBeatsSubfolder(t *testing.T) {
	images := imageEntries("B/002.jpg", "001.jpg", "A/003.jpg")

	got, ok := archive.FindCover(images)
	require.True(t, ok)
	assert.Equal(t, "001.jpg", got.FullName)
}

/*
TestFindCover_ExplicitCoverTieBreak verifies that when several entries
match the cover classifier, the one whose base name sorts first in
natural order wins, regardless of nesting depth; equal base names are
decided by natural order over the full path.
*/
func TestFindCover_ExplicitCoverTieBreak(t *testing.T) {
	images := imageEntries("Volume 2/cover.jpg", "Volume 10/cover.jpg", "Volume 1/cover.jpg")

	got, ok := archive.FindCover(images)
	require.True(t, ok)
	assert.Equal(t, "Volume 1/cover.jpg", got.FullName)
}

/*
TestFindCover_NoImages returns false, never panics, for an archive with
no surviving images.
*/
func TestFindCover_NoImages(t *testing.T) {
	_, ok := archive.FindCover(nil)
	assert.False(t, ok)
}
