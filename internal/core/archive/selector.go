// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import "fmt"

// SelectEntries implements the ordered, filtered, possibly-sliced entry
// selection.
//
// Step 1 always drops entries whose folder is blacklisted or whose name
// is a macOS sidecar. When forceImages is false and meta.PageRange is
// absent, that raw-filtered list is returned unmodified (archive order
// preserved) — this is the mode sidecar probes use, since they need
// non-image entries like ComicInfo.xml. Otherwise the list is narrowed to
// images, sorted by natural order on the extension-stripped name, and
// (when a page range is present) sliced with the cover-appendix rule: the
// first cover-matching entry is pulled out before slicing and, if
// min == 0, re-appended at the end of the slice.
func SelectEntries(entries []Entry, meta FileMetadata, forceImages bool) ([]Entry, error) {
	raw := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if HasBlacklistedFolder(e.FullName) || IsMacOSSidecar(e.FullName) {
			continue
		}
		raw = append(raw, e)
	}

	if !forceImages && !meta.PageRange.Present() {
		return raw, nil
	}

	images := make([]Entry, 0, len(raw))
	for _, e := range raw {
		if e.IsDirectory {
			continue
		}
		if !IsImage(e.FullName) {
			continue
		}
		images = append(images, e)
	}

	SortNatural(images, func(e Entry) string { return stemNoExt(e.FullName) })

	if !meta.PageRange.Present() {
		return images, nil
	}

	return sliceWithCover(images, meta.PageRange)
}

// sliceWithCover applies the min/max window to images with the
// cover-appendix rule: pull the first cover entry out before slicing,
// then re-append it at the end iff rng.Min() == 0.
func sliceWithCover(images []Entry, rng RangeSpec) ([]Entry, error) {
	coverIdx := -1
	for i, e := range images {
		if IsCover(e.FullName) {
			coverIdx = i
			break
		}
	}

	var cover *Entry
	rest := images
	if coverIdx >= 0 {
		c := images[coverIdx]
		cover = &c
		rest = make([]Entry, 0, len(images)-1)
		rest = append(rest, images[:coverIdx]...)
		rest = append(rest, images[coverIdx+1:]...)
	}

	min, max := rng.Min(), rng.Max()
	if min >= len(rest) || max >= len(rest) {
		return nil, newError(KindRangeOutOfBounds,
			fmt.Sprintf("page range %d-%d exceeds %d filtered images", min, max, len(rest)), nil)
	}

	slice := make([]Entry, 0, max-min+2)
	slice = append(slice, rest[min:max+1]...)

	if cover != nil && min == 0 {
		slice = append(slice, *cover)
	}

	return slice, nil
}
