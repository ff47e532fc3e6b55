// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

// tarGzBackend reads .cbt/.tar.gz archives with the standard library's
// archive/tar and compress/gzip. The only tar.gz-capable example in the
// retrieved pack (mholt-archiver's interfaces.go) is an abstract Format
// interface with no concrete extraction call to ground real usage
// against, so this backend uses the standard library instead of guessing
// at that library's call pattern — see DESIGN.md.
//
// tar has no central directory, so — like the RAR backend — entries are
// decoded fully into memory during a single forward pass.
type tarGzBackend struct{}

var _ Backend = tarGzBackend{}

func (tarGzBackend) Open(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindIo, "open tar.gz archive", err)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, newError(KindCorrupt, "read gzip header", err)
	}

	return &tarGzHandle{file: f, gz: gz, tr: tar.NewReader(gz)}, nil
}

type tarGzHandle struct {
	file *os.File
	gz   *gzip.Reader
	tr   *tar.Reader
}

var _ Handle = (*tarGzHandle)(nil)

func (h *tarGzHandle) Family() ArchiveFamily { return FamilyTarGz }

func (h *tarGzHandle) Close() error {
	gzErr := h.gz.Close()
	fileErr := h.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

func (h *tarGzHandle) Entries() ([]Entry, error) {
	var entries []Entry
	for {
		header, err := h.tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError(KindCorrupt, "read tar entry header", err)
		}

		if header.Typeflag == tar.TypeDir {
			entries = append(entries, Entry{FullName: header.Name, IsDirectory: true})
			continue
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		data, err := io.ReadAll(h.tr)
		if err != nil {
			return nil, newError(KindIo, "decode tar entry", err)
		}

		entries = append(entries, Entry{
			FullName:         header.Name,
			IsDirectory:      false,
			CompressedSize:   int64(len(data)),
			UncompressedSize: header.Size,
			LastModified:     header.ModTime,
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(data)), nil
			},
		})
	}
	return entries, nil
}
