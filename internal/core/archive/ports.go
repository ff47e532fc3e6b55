// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"context"
	"io"
)

// ImageEncoder writes a cover thumbnail derived from stream to disk and
// returns the final on-disk path. Image resizing/transcoding proper is an
// external collaborator — [NewImagingEncoder] provides one concrete,
// testable implementation, not a general transcoding pipeline.
type ImageEncoder interface {
	WriteCoverThumbnail(stream io.Reader, outName, outDir, format string, size int) (string, error)
}

// DirectoryService abstracts the filesystem operations the codec needs
// for extraction and download staging, so tests can substitute an
// in-memory or temp-dir fake.
type DirectoryService interface {
	TempDirectory() string
	EnsureDirectory(path string) error
	ClearAndDelete(path string) error
	CopyFile(src, dst string) error
	// Flatten removes one redundant containing folder level from dir when
	// dir has exactly one child and that child is itself a directory.
	Flatten(dir string) error
	Exists(path string) bool
}

// MediaErrorReporter records a per-archive failure without aborting the
// surrounding scan. Producer identifies which subsystem raised the error.
type MediaErrorReporter interface {
	Report(path string, producer string, message string, cause error)
}

// ProducerArchiveService is the producer name the archive codec reports
// under.
const ProducerArchiveService = "ArchiveService"

// BookService is the minimal contract for the EPUB parser path: it
// returns a pre-populated metadata record, or none, for an EPUB archive.
// The full EPUB parser is out of scope; only this contract is modelled.
type BookService interface {
	ParseInfo(ctx context.Context, path string) (*BookInfo, bool)
}

// BookInfo is the minimal EPUB-derived metadata surfaced to callers.
type BookInfo struct {
	Title       string
	Series      string
	PageCount   int
	CoverEntry  string
}
