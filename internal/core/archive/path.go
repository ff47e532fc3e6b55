// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"regexp"
	"strings"
)

// imageExtensions is the fixed set of file extensions treated as pages.
var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
	"webp": true, "avif": true, "jxl": true, "bmp": true, "tiff": true,
}

// archiveExtensions is the fixed set of extensions treated as comic
// archives. "tar.gz" is matched specially in IsArchive since it is a
// compound extension that filepath.Ext cannot see in one call.
var archiveExtensions = map[string]bool{
	"cbz": true, "zip": true, "cbr": true, "rar": true,
	"cb7": true, "7z": true, "cbt": true,
}

// defaultCoverRegex additionally recognizes filenames like "front.jpg" or
// "00-cover.jpg" as covers, beyond the bare "cover"/"folder" stems.
var defaultCoverRegex = regexp.MustCompile(`(?i)^(?:00[-_. ]?)?(?:front[-_. ]?cover|front)$`)

// PathClassifier holds the pure, side-effect-free predicates over archive
// entry paths. The zero value uses the default cover regex; construct
// with [NewPathClassifier] to override it.
type PathClassifier struct {
	coverRegex *regexp.Regexp
}

// NewPathClassifier builds a classifier with a caller-supplied cover
// regex. A nil regex falls back to the default.
func NewPathClassifier(coverRegex *regexp.Regexp) PathClassifier {
	if coverRegex == nil {
		coverRegex = defaultCoverRegex
	}
	return PathClassifier{coverRegex: coverRegex}
}

// DefaultPathClassifier is the classifier used when no override is configured.
var DefaultPathClassifier = NewPathClassifier(nil)

// extLower returns the final, lowercase extension of name without the
// leading dot ("" if there is none).
func extLower(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// stemNoExt returns the base filename with its final extension removed.
func stemNoExt(name string) string {
	base := name
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		return base[:idx]
	}
	return base
}

// IsImage reports whether name's extension is a recognized page format.
func IsImage(name string) bool {
	return imageExtensions[extLower(name)]
}

// IsArchive reports whether name's extension is a recognized comic archive.
func IsArchive(name string) bool {
	if strings.HasSuffix(strings.ToLower(name), ".tar.gz") {
		return true
	}
	return archiveExtensions[extLower(name)]
}

// IsEpub reports whether name's extension is ".epub".
func IsEpub(name string) bool {
	return extLower(name) == "epub"
}

// IsCover reports whether name (without extension, case-insensitive)
// equals "cover" or "folder", or matches the classifier's cover regex.
func (c PathClassifier) IsCover(name string) bool {
	stem := strings.ToLower(stemNoExt(name))
	if stem == "cover" || stem == "folder" {
		return true
	}
	return c.coverRegex.MatchString(stem)
}

// IsCover reports whether name matches the default cover heuristic.
func IsCover(name string) bool {
	return DefaultPathClassifier.IsCover(name)
}

// HasBlacklistedFolder reports whether any path segment of path equals
// "__MACOSX" or starts with a dot.
func HasBlacklistedFolder(path string) bool {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' })
	// The final segment is the file itself, not a folder.
	if len(segments) > 0 {
		segments = segments[:len(segments)-1]
	}
	for _, seg := range segments {
		if seg == "__MACOSX" || strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

// IsMacOSSidecar reports whether name's base filename begins with "._",
// the AppleDouble resource-fork prefix left behind by macOS zip tooling.
func IsMacOSSidecar(name string) bool {
	base := name
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.HasPrefix(base, "._")
}
