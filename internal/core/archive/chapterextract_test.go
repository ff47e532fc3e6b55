// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

func tenPages() []archive.PageInfo {
	pages := make([]archive.PageInfo, 10)
	for i := range pages {
		pages[i] = archive.PageInfo{Name: "page.jpg", Index: i, Size: 100}
	}
	return pages
}

/*
TestExtractChapters_S6_FromBookmarks is scenario S6: a 10-page archive
with bookmarks at indices 0, 4, 7 splits into three chapters with ranges
0-3, 4-6, 7-9 and labels 1, 2, 3.
*/
func TestExtractChapters_S6_FromBookmarks(t *testing.T) {
	sidecar := &archive.ComicInfo{
		Pages: []archive.ComicInfoPage{
			{Image: 0, Bookmark: "Chapter 1"},
			{Image: 4, Bookmark: "Chapter 2"},
			{Image: 7, Bookmark: "Chapter 3"},
		},
	}

	base := archive.ParserInfo{
		Chapters: archive.DefaultChapterSentinel,
		Volumes:  "1",
	}

	got := archive.ExtractChapters(base, tenPages(), sidecar)
	require.Len(t, got, 3)

	assert.Equal(t, "0-3", got[0].FileMetadata.PageRange.String())
	assert.Equal(t, "1", got[0].Chapters)
	assert.Equal(t, "4-6", got[1].FileMetadata.PageRange.String())
	assert.Equal(t, "2", got[1].Chapters)
	assert.Equal(t, "7-9", got[2].FileMetadata.PageRange.String())
	assert.Equal(t, "3", got[2].Chapters)
}

/*
TestExtractChapters_PreconditionsSkipExtraction verifies the three
guard conditions each cause the info to pass through unchanged.
*/
func TestExtractChapters_PreconditionsSkipExtraction(t *testing.T) {
	sidecar := &archive.ComicInfo{
		Pages: []archive.ComicInfoPage{{Image: 0, Bookmark: "Chapter 1"}},
	}

	special := archive.ParserInfo{IsSpecial: true, Chapters: archive.DefaultChapterSentinel, Volumes: "1"}
	assert.Equal(t, []archive.ParserInfo{special}, archive.ExtractChapters(special, tenPages(), sidecar))

	alreadyKnown := archive.ParserInfo{Chapters: "5", Volumes: "1"}
	assert.Equal(t, []archive.ParserInfo{alreadyKnown}, archive.ExtractChapters(alreadyKnown, tenPages(), sidecar))

	looseLeaf := archive.ParserInfo{Chapters: archive.DefaultChapterSentinel, Volumes: archive.LooseLeafVolumeSentinel}
	assert.Equal(t, []archive.ParserInfo{looseLeaf}, archive.ExtractChapters(looseLeaf, tenPages(), sidecar))
}

/*
TestExtractChapters_NoSourceYieldsUnchanged verifies that when neither
bookmarks nor filename text produce a chapter, the info passes through.
*/
func TestExtractChapters_NoSourceYieldsUnchanged(t *testing.T) {
	base := archive.ParserInfo{Chapters: archive.DefaultChapterSentinel, Volumes: "1"}
	got := archive.ExtractChapters(base, tenPages(), nil)
	require.Len(t, got, 1)
	assert.Equal(t, base, got[0])
}

/*
TestExtractChapters_FromFilenames falls back to filename-text parsing
when no sidecar bookmarks exist.
*/
func TestExtractChapters_FromFilenames(t *testing.T) {
	pages := []archive.PageInfo{
		{Name: "Chapter 1 - 001.jpg", Index: 0, Size: 10},
		{Name: "Chapter 1 - 002.jpg", Index: 1, Size: 10},
		{Name: "Chapter 2 - 001.jpg", Index: 2, Size: 10},
	}
	base := archive.ParserInfo{Chapters: archive.DefaultChapterSentinel, Volumes: "1"}

	got := archive.ExtractChapters(base, pages, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "0-1", got[0].FileMetadata.PageRange.String())
	assert.Equal(t, "2-2", got[1].FileMetadata.PageRange.String())
}
