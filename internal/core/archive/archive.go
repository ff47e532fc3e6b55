// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package archive implements the comic archive codec: a uniform read
interface over ZIP-family and RAR-family (plus 7z and tar.gz) comic
archives, page selection and ordering, cover election, ComicInfo.xml
sidecar parsing, and chapter extraction.

# Architecture

The codec is stateless: every operation opens its own archive handle,
selects entries through the shared [SelectEntries] algorithm, and hands
the result to an operation-specific sink (cover bytes to an
[ImageEncoder], sidecar bytes to [ParseComicInfo], all bytes to a new ZIP
stream or the filesystem). No static mutable state exists anywhere in
this package, so a [Codec] value is safe to share across concurrent
worker goroutines as long as each call uses its own [FileMetadata].

# Failure isolation

Every top-level [Codec] operation catches backend errors, reports them
through [MediaErrorReporter], and returns its documented empty value so a
scan of thousands of archives survives any number of corrupt entries.
There are two exceptions. [Codec.ExtractToDir] rethrows as
[ErrExtractFailed], since callers need to abort the surrounding task, and
[Codec.RepackZipStream] reports its failure and also returns the error.
*/
package archive

import (
	"io"
	"time"
)

// FileMetadata identifies one archive operation. It is the codec's
// primary cache key: (Path, page range string).
type FileMetadata struct {
	// Path is the absolute filesystem path of the archive.
	Path string
	// PageRange, when present, windows the filtered image list.
	PageRange RangeSpec
	// FileSize is informational; -1 means unknown.
	FileSize int64
	// CoverFile, when non-empty, is used verbatim as the cover entry name.
	CoverFile string
}

// CacheKey returns the identity tuple used to deduplicate repeated work
// against the same archive and page window.
func (m FileMetadata) CacheKey() string {
	return m.Path + "|" + m.PageRange.String()
}

// Clone returns a deep copy of m; FileMetadata has no reference fields
// today, so this is a value copy, but the method exists so callers never
// need to know that.
func (m FileMetadata) Clone() FileMetadata {
	return m
}

// PageInfo describes one selected page: its entry name in the archive,
// its zero-based index into the filtered image list, and its compressed
// size in bytes. Pages read from 7z archives report a size of 0.
type PageInfo struct {
	Name  string
	Index int
	Size  int64
}

// ParsedChapter is one chapter boundary emitted while scanning for
// bookmarks or filename text, before it is turned into a full
// [ParserInfo] clone by [ExtractChapters].
type ParsedChapter struct {
	Page  int
	Label string
	Title string
}

// ArchiveFamily tags which backend produced a [Handle].
//
// SevenZip and TarGz are added here because the codec must also read 7z
// and tar.gz archives.
// See DESIGN.md for the rationale.
type ArchiveFamily int

const (
	FamilyUnsupported ArchiveFamily = iota
	FamilyZip
	FamilyRar
	FamilySevenZip
	FamilyTarGz
)

func (f ArchiveFamily) String() string {
	switch f {
	case FamilyZip:
		return "zip"
	case FamilyRar:
		return "rar"
	case FamilySevenZip:
		return "7z"
	case FamilyTarGz:
		return "tar.gz"
	default:
		return "unsupported"
	}
}

// Entry describes one item inside an opened archive, backend-agnostic.
type Entry struct {
	FullName         string
	IsDirectory      bool
	CompressedSize   int64
	UncompressedSize int64
	LastModified     time.Time

	// ZipMethod and HasZipMethod carry the source ZIP storage method
	// (zip.Store or zip.Deflate) when the entry came from a ZIP-family
	// archive, so RepackZipStream can preserve it instead of always
	// forcing Deflate.
	ZipMethod    uint16
	HasZipMethod bool

	open func() (io.ReadCloser, error)
}

// Open returns a stream over the entry's contents. Callers must close it.
func (e Entry) Open() (io.ReadCloser, error) {
	if e.open == nil {
		return nil, &Error{Kind: KindIo, Message: "entry has no opener"}
	}
	return e.open()
}
