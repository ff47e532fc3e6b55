// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"archive/zip"
	"io"
)

// zipBackend reads ZIP-family archives (.cbz, .zip, .epub) via the
// standard library, matching how every ZIP-touching file in the
// retrieved pack (sumatrapdfreader's sort tester, abbit-m4k, perelin's
// cbz reader/writer, nguyengg-xy3) opens ZIPs: archive/zip.OpenReader.
type zipBackend struct{}

var _ Backend = zipBackend{}

func (zipBackend) Open(path string) (Handle, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, newError(KindCorrupt, "open zip archive", err)
	}
	return &zipHandle{reader: r}, nil
}

type zipHandle struct {
	reader *zip.ReadCloser
}

var _ Handle = (*zipHandle)(nil)

func (h *zipHandle) Family() ArchiveFamily { return FamilyZip }

func (h *zipHandle) Close() error { return h.reader.Close() }

func (h *zipHandle) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(h.reader.File))
	for _, f := range h.reader.File {
		f := f
		entries = append(entries, Entry{
			FullName:         f.Name,
			IsDirectory:      f.FileInfo().IsDir(),
			CompressedSize:   int64(f.CompressedSize64),
			UncompressedSize: int64(f.UncompressedSize64),
			LastModified:     f.Modified,
			ZipMethod:        f.Method,
			HasZipMethod:     true,
			open: func() (io.ReadCloser, error) {
				return f.Open()
			},
		})
	}
	return entries, nil
}
