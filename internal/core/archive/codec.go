// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Codec is the top-level archive service. It is stateless
// aside from its collaborators, so a single Codec may be shared across
// concurrent worker goroutines as long as each call passes its own
// [FileMetadata].
type Codec struct {
	encoder  ImageEncoder
	dirs     DirectoryService
	reporter MediaErrorReporter
	logger   *slog.Logger
}

// NewCodec builds a Codec from its collaborators. Any nil argument is
// replaced with a default, testable implementation.
func NewCodec(encoder ImageEncoder, dirs DirectoryService, reporter MediaErrorReporter, logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.Default()
	}
	if encoder == nil {
		encoder = NewImagingEncoder()
	}
	if dirs == nil {
		dirs = NewOSDirectoryService(os.TempDir())
	}
	if reporter == nil {
		reporter = NewSlogErrorReporter(logger)
	}
	return &Codec{encoder: encoder, dirs: dirs, reporter: reporter, logger: logger}
}

func (c *Codec) report(path, message string, cause error) {
	c.reporter.Report(path, ProducerArchiveService, message, cause)
	c.logger.Warn("archive operation failed", "path", path, "message", message, "error", cause)
}

// PageCount returns the number of filtered pages, or 0 on any failure.
func (c *Codec) PageCount(ctx context.Context, meta FileMetadata) int {
	pages, err := c.listPagesOrErr(ctx, meta)
	if err != nil {
		c.report(meta.Path, "page_count failed", err)
		return 0
	}
	return len(pages)
}

// ListPages returns the (name, index, size) tuples for meta's filtered
// image list, or nil on any failure.
func (c *Codec) ListPages(ctx context.Context, meta FileMetadata) []PageInfo {
	pages, err := c.listPagesOrErr(ctx, meta)
	if err != nil {
		c.report(meta.Path, "list_pages failed", err)
		return nil
	}
	return pages
}

func (c *Codec) listPagesOrErr(ctx context.Context, meta FileMetadata) ([]PageInfo, error) {
	handle, _, err := probe(meta.Path)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	entries, err := handle.Entries()
	if err != nil {
		return nil, err
	}

	selected, err := SelectEntries(entries, meta, true)
	if err != nil {
		return nil, err
	}

	pages := make([]PageInfo, 0, len(selected))
	for i, e := range selected {
		if err := ctx.Err(); err != nil {
			return nil, newError(KindCancelled, "list_pages cancelled", err)
		}
		pages = append(pages, PageInfo{Name: e.FullName, Index: i, Size: e.CompressedSize})
	}
	return pages, nil
}

// CoverImage resolves meta's cover entry — meta.CoverFile when set, else
// [FindCover] — opens its byte stream, and hands it to the [ImageEncoder]
// collaborator. Returns "" on any failure.
func (c *Codec) CoverImage(ctx context.Context, meta FileMetadata, outName, outDir, format string, size int) string {
	handle, _, err := probe(meta.Path)
	if err != nil {
		c.report(meta.Path, "cover_image: probe failed", err)
		return ""
	}
	defer handle.Close()

	entries, err := handle.Entries()
	if err != nil {
		c.report(meta.Path, "cover_image: list entries failed", err)
		return ""
	}

	cover, err := c.resolveCover(entries, meta)
	if err != nil {
		c.report(meta.Path, "cover_image: no cover found", err)
		return ""
	}

	stream, err := cover.Open()
	if err != nil {
		c.report(meta.Path, "cover_image: open entry failed", err)
		return ""
	}
	defer stream.Close()

	path, err := c.encoder.WriteCoverThumbnail(stream, outName, outDir, format, size)
	if err != nil {
		c.report(meta.Path, "cover_image: encode failed", err)
		return ""
	}
	return path
}

// resolveCover honors an explicit meta.CoverFile override, falling back
// to CoverFinder when that entry is missing.
func (c *Codec) resolveCover(entries []Entry, meta FileMetadata) (Entry, error) {
	if meta.CoverFile != "" {
		for _, e := range entries {
			if e.FullName == meta.CoverFile {
				return e, nil
			}
		}
		// EntryMissing: fall back to the heuristic.
	}

	images, err := SelectEntries(entries, FileMetadata{Path: meta.Path}, true)
	if err != nil {
		return Entry{}, err
	}
	cover, ok := FindCover(images)
	if !ok {
		return Entry{}, newError(KindEntryMissing, "no cover candidate found", nil)
	}
	return cover, nil
}

// ComicInfoFor finds and parses the archive's ComicInfo.xml sidecar, or
// returns nil if absent or malformed.
func (c *Codec) ComicInfoFor(ctx context.Context, meta FileMetadata) *ComicInfo {
	handle, _, err := probe(meta.Path)
	if err != nil {
		c.report(meta.Path, "comic_info: probe failed", err)
		return nil
	}
	defer handle.Close()

	entries, err := handle.Entries()
	if err != nil {
		c.report(meta.Path, "comic_info: list entries failed", err)
		return nil
	}

	entry, ok := findSidecarEntry(entries)
	if !ok {
		return nil
	}

	stream, err := entry.Open()
	if err != nil {
		c.report(meta.Path, "comic_info: open sidecar failed", err)
		return nil
	}
	defer stream.Close()

	raw, err := io.ReadAll(stream)
	if err != nil {
		c.report(meta.Path, "comic_info: read sidecar failed", err)
		return nil
	}

	info, err := ParseComicInfo(raw)
	if err != nil {
		// MalformedSidecar is treated as "no sidecar" without a report,
		// it is common in the wild for hand-edited files.
		return nil
	}
	return info
}

// findSidecarEntry finds the first non-blacklisted, non-sidecar entry
// named exactly "ComicInfo.xml" (case-insensitive).
func findSidecarEntry(entries []Entry) (Entry, bool) {
	for _, e := range entries {
		if e.IsDirectory {
			continue
		}
		if HasBlacklistedFolder(e.FullName) || IsMacOSSidecar(e.FullName) {
			continue
		}
		base := e.FullName
		if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
			base = base[idx+1:]
		}
		if strings.EqualFold(base, "ComicInfo.xml") {
			return e, true
		}
	}
	return Entry{}, false
}

// ExtractToDir extracts meta's selected entries into dest, preserving
// relative paths. Idempotent: a pre-existing dest is a no-op. Unlike
// the other Codec operations (except [Codec.RepackZipStream], which also
// returns its errors), failures are rethrown as [ErrExtractFailed] rather
// than swallowed, because callers need to abort the surrounding task.
func (c *Codec) ExtractToDir(ctx context.Context, meta FileMetadata, dest string) error {
	if c.dirs.Exists(dest) {
		return nil
	}

	handle, _, err := probe(meta.Path)
	if err != nil {
		c.report(meta.Path, "extract_to_dir: probe failed", err)
		return wrapExtractFailed(err)
	}
	defer handle.Close()

	entries, err := handle.Entries()
	if err != nil {
		c.report(meta.Path, "extract_to_dir: list entries failed", err)
		return wrapExtractFailed(err)
	}

	selected, err := SelectEntries(entries, meta, meta.PageRange.Present())
	if err != nil {
		c.report(meta.Path, "extract_to_dir: select entries failed", err)
		return wrapExtractFailed(err)
	}

	if meta.PageRange.Present() && meta.PageRange.Min() == 0 {
		if sidecar, ok := findSidecarEntry(entries); ok {
			selected = append(selected, sidecar)
		}
	}

	if err := c.dirs.EnsureDirectory(dest); err != nil {
		return wrapExtractFailed(err)
	}

	if err := c.writeSelectedEntries(ctx, dest, selected); err != nil {
		c.dirs.ClearAndDelete(dest)
		c.report(meta.Path, "extract_to_dir: write failed", err)
		return wrapExtractFailed(err)
	}

	if archiveIsSingleRootFolder(entries) {
		if err := c.dirs.Flatten(dest); err != nil {
			c.report(meta.Path, "extract_to_dir: flatten failed", err)
			return wrapExtractFailed(err)
		}
	}

	return nil
}

func wrapExtractFailed(cause error) error {
	return newError(KindExtractFailed, "extraction failed", cause)
}

func (c *Codec) writeSelectedEntries(ctx context.Context, dest string, selected []Entry) error {
	for _, e := range selected {
		if err := ctx.Err(); err != nil {
			return newError(KindCancelled, "extract_to_dir cancelled", err)
		}
		if e.IsDirectory {
			continue
		}

		target := filepath.Join(dest, filepath.FromSlash(e.FullName))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		stream, err := e.Open()
		if err != nil {
			return err
		}

		out, err := os.Create(target)
		if err != nil {
			stream.Close()
			return err
		}

		_, copyErr := io.Copy(out, stream)
		stream.Close()
		closeErr := out.Close()
		if copyErr != nil {
			return copyErr
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}

// archiveIsSingleRootFolder reports whether the archive is "nested in a
// single root folder": every non-blacklisted entry shares the same
// top-level directory segment. This replaces the brittle
// HasExtension(entries[0]) heuristic flagged as a design smell — see
// DESIGN.md.
func archiveIsSingleRootFolder(entries []Entry) bool {
	root := ""
	seenAny := false
	for _, e := range entries {
		if HasBlacklistedFolder(e.FullName) || IsMacOSSidecar(e.FullName) {
			continue
		}
		name := strings.ReplaceAll(e.FullName, `\`, "/")
		idx := strings.Index(name, "/")
		if idx < 0 {
			return false
		}
		top := name[:idx]
		if !seenAny {
			root = top
			seenAny = true
			continue
		}
		if top != root {
			return false
		}
	}
	return seenAny
}

// RepackZipStream returns meta's selected entries as a new in-memory ZIP
// stream positioned at 0. When meta.PageRange is absent, the source file
// is streamed back unmodified.
func (c *Codec) RepackZipStream(ctx context.Context, meta FileMetadata) (io.ReadSeeker, error) {
	if !meta.PageRange.Present() {
		raw, err := os.ReadFile(meta.Path)
		if err != nil {
			c.report(meta.Path, "repack_zip_stream: read source failed", err)
			return nil, newError(KindIo, "read source archive", err)
		}
		return bytes.NewReader(raw), nil
	}

	handle, _, err := probe(meta.Path)
	if err != nil {
		c.report(meta.Path, "repack_zip_stream: probe failed", err)
		return nil, err
	}
	defer handle.Close()

	entries, err := handle.Entries()
	if err != nil {
		c.report(meta.Path, "repack_zip_stream: list entries failed", err)
		return nil, err
	}

	selected, err := SelectEntries(entries, meta, true)
	if err != nil {
		c.report(meta.Path, "repack_zip_stream: select entries failed", err)
		return nil, err
	}

	if meta.PageRange.Min() == 0 {
		if sidecar, ok := findSidecarEntry(entries); ok {
			selected = append(selected, sidecar)
		}
	}

	buf, err := c.buildZip(ctx, selected)
	if err != nil {
		c.report(meta.Path, "repack_zip_stream: build zip failed", err)
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func (c *Codec) buildZip(ctx context.Context, entries []Entry) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return nil, newError(KindCancelled, "repack_zip_stream cancelled", err)
		}
		if e.IsDirectory {
			continue
		}

		header := &zip.FileHeader{
			Name:     e.FullName,
			Modified: e.LastModified,
		}
		if e.HasZipMethod {
			header.Method = e.ZipMethod
		} else {
			header.Method = zip.Deflate
		}
		header.UncompressedSize64 = uint64(e.UncompressedSize)

		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return nil, newError(KindIo, "create zip entry", err)
		}

		stream, err := e.Open()
		if err != nil {
			zw.Close()
			return nil, newError(KindIo, "open source entry", err)
		}
		_, copyErr := io.Copy(w, stream)
		stream.Close()
		if copyErr != nil {
			zw.Close()
			return nil, newError(KindIo, "copy entry into zip", copyErr)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, newError(KindIo, "finalize zip", err)
	}
	return buf, nil
}

// CanOpen reports whether path is an archive or EPUB some backend can
// actually open.
func (c *Codec) CanOpen(path string) bool {
	return CanOpen(path)
}
