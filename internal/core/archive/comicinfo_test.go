// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

const sampleComicInfo = `<?xml version="1.0" encoding="utf-8"?>
<ComicInfo>
  <Series>  Yomira Chronicles  </Series>
  <Volume>1</Volume>
  <Number></Number>
  <Web></Web>
  <PageCount>10</PageCount>
  <Pages>
    <Page Image="0" Type="FrontCover" Bookmark="Chapter 1" />
    <Page Image="1" Type="Story" />
    <Page Image="4" Type="Story" Bookmark="Chapter 2" />
    <Page Image="7" Type="Story" Bookmark="Chapter 3" />
  </Pages>
</ComicInfo>`

func TestParseComicInfo_StripsEmptyLeavesAndTrims(t *testing.T) {
	info, err := archive.ParseComicInfo([]byte(sampleComicInfo))
	require.NoError(t, err)

	assert.Equal(t, "Yomira Chronicles", info.Series)
	assert.Equal(t, "1", info.Volume)
	assert.Equal(t, 10, info.PageCount)
	require.Len(t, info.Pages, 4)
	assert.Equal(t, archive.PageTypeFrontCover, info.Pages[0].Type)
	assert.Equal(t, "Chapter 1", info.Pages[0].Bookmark)
}

func TestParseComicInfo_EmptyPageSurvives(t *testing.T) {
	const xmlDoc = `<ComicInfo><Pages><Page Image="3" /></Pages></ComicInfo>`
	info, err := archive.ParseComicInfo([]byte(xmlDoc))
	require.NoError(t, err)
	require.Len(t, info.Pages, 1)
	assert.Equal(t, 3, info.Pages[0].Image)
}

func TestParseComicInfo_MalformedXMLTreatedAsNoSidecar(t *testing.T) {
	_, err := archive.ParseComicInfo([]byte("<ComicInfo><Series>unterminated"))
	require.Error(t, err)
	assert.Equal(t, archive.KindMalformedSidecar, err.(*archive.Error).Kind)
}
