// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import "strings"

// probe determines which backend can actually open a path whose extension
// classifies as an archive or EPUB, opening the file up to twice.
//
//  1. If the extension (case-insensitive) is .cbr or .rar, use the RAR backend.
//  2. If the extension is .cb7 or .7z, use the 7z backend.
//  3. If the extension is .cbt or .tar.gz, use the tar.gz backend.
//  4. Otherwise attempt ZIP (covers .cbz/.zip/.epub); on success, Zip.
//  5. Otherwise attempt the RAR backend anyway (misnamed extensions); on
//     success, Rar.
//  6. Otherwise, Unsupported.
func probe(path string) (Handle, ArchiveFamily, error) {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".cbr") || strings.HasSuffix(lower, ".rar"):
		h, err := (rarBackend{}).Open(path)
		if err != nil {
			return nil, FamilyUnsupported, err
		}
		return h, FamilyRar, nil

	case strings.HasSuffix(lower, ".cb7") || strings.HasSuffix(lower, ".7z"):
		h, err := (sevenZipBackend{}).Open(path)
		if err != nil {
			return nil, FamilyUnsupported, err
		}
		return h, FamilySevenZip, nil

	case strings.HasSuffix(lower, ".cbt") || strings.HasSuffix(lower, ".tar.gz"):
		h, err := (tarGzBackend{}).Open(path)
		if err != nil {
			return nil, FamilyUnsupported, err
		}
		return h, FamilyTarGz, nil
	}

	if h, err := (zipBackend{}).Open(path); err == nil {
		return h, FamilyZip, nil
	}

	if h, err := (rarBackend{}).Open(path); err == nil {
		return h, FamilyRar, nil
	}

	return nil, FamilyUnsupported, newError(KindUnsupported, "no backend could open "+path, nil)
}

// CanOpen reports whether path both classifies as an archive/EPUB and can
// actually be opened by some backend. It pays the same up-to-two-opens
// cost as probe.
func CanOpen(path string) bool {
	if !IsArchive(path) && !IsEpub(path) {
		return false
	}
	h, family, err := probe(path)
	if err != nil || family == FamilyUnsupported {
		return false
	}
	h.Close()
	return true
}
