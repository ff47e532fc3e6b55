// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"io"

	"github.com/bodgit/sevenzip"
)

// sevenZipBackend reads .cb7/.7z archives via github.com/bodgit/sevenzip,
// the same library used by nguyengg-xy3's archiver abstraction and
// ZaparooProject-go-gameid's 7z reader in the retrieved pack.
type sevenZipBackend struct{}

var _ Backend = sevenZipBackend{}

func (sevenZipBackend) Open(path string) (Handle, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, newError(KindCorrupt, "open 7z archive", err)
	}
	return &sevenZipHandle{reader: r}, nil
}

type sevenZipHandle struct {
	reader *sevenzip.ReadCloser
}

var _ Handle = (*sevenZipHandle)(nil)

func (h *sevenZipHandle) Family() ArchiveFamily { return FamilySevenZip }

func (h *sevenZipHandle) Close() error { return h.reader.Close() }

func (h *sevenZipHandle) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(h.reader.File))
	for _, f := range h.reader.File {
		f := f
		entries = append(entries, Entry{
			FullName:         f.Name,
			IsDirectory:      f.FileInfo().IsDir(),
			UncompressedSize: int64(f.UncompressedSize),
			LastModified:     f.Modified,
			open: func() (io.ReadCloser, error) {
				return f.Open()
			},
		})
	}
	return entries, nil
}
