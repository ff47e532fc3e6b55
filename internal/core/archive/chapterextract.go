// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"regexp"
	"strings"
)

// DefaultChapterSentinel marks a ParserInfo whose chapter number has not
// been determined yet. LooseLeafVolumeSentinel marks a ParserInfo that is
// a standalone chapter file not organized under any volume — extraction
// never applies to those, since there is no "volume" to slice.
const (
	DefaultChapterSentinel  = "0"
	LooseLeafVolumeSentinel = "0"
)

// chapterRegex extracts a chapter number from free text such as sidecar
// bookmarks or filenames: "Chapter 12", "Ch. 12", "c012", "#12".
var chapterRegex = regexp.MustCompile(`(?i)(?:chapter|ch\.?|c|#)\s*0*(\d+(?:\.\d+)?)`)

// editionTagRegex strips common scanlation edition/group tags from
// filenames before chapter parsing is attempted, e.g. "[Digital]",
// "(2021)", "{HD}".
var editionTagRegex = regexp.MustCompile(`[\[\(\{][^\]\)\}]*[\]\)\}]`)

// ParserInfo is the per-archive metadata record chapter extraction reads
// and emits: a FileMetadata (identifying which slice of the archive this
// info describes) plus the classification fields needed to decide
// whether extraction should run at all.
type ParserInfo struct {
	FileMetadata FileMetadata
	IsSpecial    bool
	Chapters     string
	Volumes      string
	Title        string
}

// Clone returns a deep copy safe to mutate independently.
func (p ParserInfo) Clone() ParserInfo {
	clone := p
	clone.FileMetadata = p.FileMetadata.Clone()
	return clone
}

// parseChapterLabel returns the numeric chapter label found in text, or
// DefaultChapterSentinel if none is found.
func parseChapterLabel(text string) string {
	m := chapterRegex.FindStringSubmatch(text)
	if m == nil {
		return DefaultChapterSentinel
	}
	return m[1]
}

// parseBookmarkTitle extracts a human title from a bookmark string by
// dropping the leading chapter marker, if any.
func parseBookmarkTitle(text string) string {
	trimmed := chapterRegex.ReplaceAllString(text, "")
	trimmed = strings.Trim(trimmed, " -_:.")
	return trimmed
}

// ExtractChapters scans, given the base ParserInfo, its
// page listing (already selected/sorted), and the parsed sidecar (if
// any), it either returns []ParserInfo{info} unchanged or a slice of
// per-chapter ParserInfo clones.
func ExtractChapters(info ParserInfo, pages []PageInfo, sidecar *ComicInfo) []ParserInfo {
	if info.IsSpecial ||
		info.Chapters != DefaultChapterSentinel ||
		info.Volumes == LooseLeafVolumeSentinel {
		return []ParserInfo{info}
	}

	candidates := chaptersFromBookmarks(sidecar)
	if len(candidates) == 0 {
		candidates = chaptersFromFilenames(pages)
	}
	if len(candidates) == 0 {
		return []ParserInfo{info}
	}

	candidates = dedupeByLabel(candidates)
	return buildChapterInfos(info, candidates, pages, sidecar)
}

func chaptersFromBookmarks(sidecar *ComicInfo) []ParsedChapter {
	if sidecar == nil {
		return nil
	}
	var out []ParsedChapter
	for _, p := range sidecar.Pages {
		if strings.TrimSpace(p.Bookmark) == "" {
			continue
		}
		label := parseChapterLabel(p.Bookmark)
		if label == DefaultChapterSentinel {
			continue
		}
		out = append(out, ParsedChapter{
			Page:  p.Image,
			Label: label,
			Title: parseBookmarkTitle(p.Bookmark),
		})
	}
	return out
}

func chaptersFromFilenames(pages []PageInfo) []ParsedChapter {
	var out []ParsedChapter
	for _, pg := range pages {
		cleanName := editionTagRegex.ReplaceAllString(pg.Name, "")
		label := parseChapterLabel(cleanName)
		if label == DefaultChapterSentinel {
			continue
		}
		title := ""
		for _, seg := range strings.FieldsFunc(pg.Name, func(r rune) bool { return r == '/' || r == '\\' }) {
			if t := parseBookmarkTitle(seg); t != "" {
				title = t
				break
			}
		}
		out = append(out, ParsedChapter{Page: pg.Index, Label: label, Title: title})
	}
	return out
}

// dedupeByLabel keeps only the first occurrence per chapter label,
// preserving discovery order, then sorts by page index.
func dedupeByLabel(candidates []ParsedChapter) []ParsedChapter {
	seen := make(map[string]bool, len(candidates))
	out := make([]ParsedChapter, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.Label] {
			continue
		}
		seen[c.Label] = true
		out = append(out, c)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Page < out[j-1].Page; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func buildChapterInfos(base ParserInfo, chapters []ParsedChapter, pages []PageInfo, sidecar *ComicInfo) []ParserInfo {
	pageCount := len(pages)
	result := make([]ParserInfo, 0, len(chapters))

	for i, ch := range chapters {
		start := 0
		if i != 0 {
			start = ch.Page
		}
		end := pageCount - 1
		if i != len(chapters)-1 {
			end = chapters[i+1].Page - 1
		}

		var size int64
		for _, pg := range pages {
			if pg.Index >= start && pg.Index <= end {
				size += pg.Size
			}
		}

		cover := coverNameInRange(pages, sidecar, start, end)

		clone := base.Clone()
		clone.FileMetadata.PageRange = NewRangeSpec(start, end)
		clone.FileMetadata.FileSize = size
		clone.FileMetadata.CoverFile = cover
		clone.Chapters = ch.Label
		if ch.Title != "" {
			clone.Title = ch.Title
		}
		result = append(result, clone)
	}

	return result
}

// coverNameInRange returns the name of the first page in [start, end]
// whose sidecar page type is FrontCover or InnerCover, else "".
func coverNameInRange(pages []PageInfo, sidecar *ComicInfo, start, end int) string {
	if sidecar == nil {
		return ""
	}
	typeByImage := make(map[int]PageType, len(sidecar.Pages))
	for _, p := range sidecar.Pages {
		typeByImage[p.Image] = p.Type
	}

	for _, pg := range pages {
		if pg.Index < start || pg.Index > end {
			continue
		}
		t := typeByImage[pg.Index]
		if t == PageTypeFrontCover || t == PageTypeInnerCover {
			return pg.Name
		}
	}
	return ""
}
