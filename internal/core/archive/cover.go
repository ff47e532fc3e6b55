// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import "strings"

// FindCover implements a four-tier cover election heuristic over an
// already-blacklist-filtered, non-sorted image entry list.
//
//  1. An entry whose name matches the cover classifier anywhere in the
//     archive; when several match, the one that sorts first in natural
//     order over its base name wins, and entries with equal base names
//     are ordered by natural order over their full path.
//  2. Failing that, the first image (natural order) that sits at
//     archive root (no "/" in its full name).
//  3. Failing that, entries are grouped by their containing directory;
//     within the directory that sorts first (natural order on the
//     directory path), the first image (natural order) wins.
//  4. Failing that — a completely flat archive with no root image and
//     no explicit cover — the first image in global natural order.
func FindCover(images []Entry) (Entry, bool) {
	if len(images) == 0 {
		return Entry{}, false
	}

	if e, ok := findExplicitCover(images); ok {
		return e, true
	}

	root := rootImages(images)
	if len(root) > 0 {
		SortNatural(root, func(e Entry) string { return stemNoExt(e.FullName) })
		return root[0], true
	}

	if e, ok := findFirstInFirstDirectory(images); ok {
		return e, true
	}

	sorted := make([]Entry, len(images))
	copy(sorted, images)
	SortNatural(sorted, func(e Entry) string { return stemNoExt(e.FullName) })
	return sorted[0], true
}

func findExplicitCover(images []Entry) (Entry, bool) {
	var candidates []Entry
	for _, e := range images {
		if IsCover(e.FullName) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return Entry{}, false
	}
	SortNatural(candidates, func(e Entry) string { return e.FullName })
	SortNatural(candidates, func(e Entry) string { return stemNoExt(e.FullName) })
	return candidates[0], true
}

func rootImages(images []Entry) []Entry {
	var root []Entry
	for _, e := range images {
		if !strings.Contains(e.FullName, "/") {
			root = append(root, e)
		}
	}
	return root
}

func findFirstInFirstDirectory(images []Entry) (Entry, bool) {
	dirs := make(map[string][]Entry)
	var order []string
	for _, e := range images {
		dir := dirOf(e.FullName)
		if _, ok := dirs[dir]; !ok {
			order = append(order, dir)
		}
		dirs[dir] = append(dirs[dir], e)
	}
	if len(order) == 0 {
		return Entry{}, false
	}

	SortNatural(order, func(s string) string { return s })
	group := dirs[order[0]]
	SortNatural(group, func(e Entry) string { return stemNoExt(e.FullName) })
	return group[0], true
}

func dirOf(fullName string) string {
	name := strings.ReplaceAll(fullName, "\\", "/")
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return ""
	}
	return name[:idx]
}
