// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive_test

import (
	"archive/zip"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buivan/yomira/internal/core/archive"
)

// fakeReporter records every report instead of writing to a logger, so
// tests can assert on failure isolation without parsing log output.
type fakeReporter struct {
	reports []string
}

func (f *fakeReporter) Report(path, producer, message string, cause error) {
	f.reports = append(f.reports, message)
}

// fakeEncoder captures the cover bytes handed to it instead of decoding a
// real image, so tests can exercise CoverImage without depending on
// disintegration/imaging producing a valid image codec output.
type fakeEncoder struct {
	lastName string
	written  []byte
}

func (f *fakeEncoder) WriteCoverThumbnail(stream io.Reader, outName, outDir, format string, size int) (string, error) {
	data, err := io.ReadAll(stream)
	if err != nil {
		return "", err
	}
	f.lastName = outName
	f.written = data
	return filepath.Join(outDir, outName+"."+format), nil
}

func buildZipFile(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "book.cbz")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func newTestCodec(reporter *fakeReporter, encoder *fakeEncoder, tempDir string) *archive.Codec {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dirs := archive.NewOSDirectoryService(tempDir)
	return archive.NewCodec(encoder, dirs, reporter, logger)
}

func TestCodec_PageCountAndListPages(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{
		"001.jpg":       "a",
		"002.jpg":       "b",
		"cover.jpg":     "c",
		"ComicInfo.xml": "<ComicInfo/>",
	})

	codec := newTestCodec(&fakeReporter{}, &fakeEncoder{}, dir)
	meta := archive.FileMetadata{Path: path}

	count := codec.PageCount(context.Background(), meta)
	assert.Equal(t, 3, count)

	pages := codec.ListPages(context.Background(), meta)
	require.Len(t, pages, 3)
	assert.Equal(t, "001.jpg", pages[0].Name)
	assert.Equal(t, "cover.jpg", pages[2].Name)
}

func TestCodec_CoverImage(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{
		"001.jpg":   "page-one-bytes",
		"cover.jpg": "cover-bytes",
	})

	encoder := &fakeEncoder{}
	codec := newTestCodec(&fakeReporter{}, encoder, dir)

	out := codec.CoverImage(context.Background(), archive.FileMetadata{Path: path}, "thumb", dir, "jpg", 200)
	require.NotEmpty(t, out)
	assert.Equal(t, []byte("cover-bytes"), encoder.written)
}

func TestCodec_ComicInfoFor_IgnoresBlacklistedFolder(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{
		"001.jpg":                "a",
		"ComicInfo.xml":          "<ComicInfo><Series>Real</Series></ComicInfo>",
		"__MACOSX/ComicInfo.xml": "<ComicInfo><Series>Fake</Series></ComicInfo>",
	})

	codec := newTestCodec(&fakeReporter{}, &fakeEncoder{}, dir)
	info := codec.ComicInfoFor(context.Background(), archive.FileMetadata{Path: path})
	require.NotNil(t, info)
	assert.Equal(t, "Real", info.Series)
}

func TestCodec_ExtractToDir_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{"001.jpg": "a", "002.jpg": "b"})
	dest := filepath.Join(dir, "extracted")

	codec := newTestCodec(&fakeReporter{}, &fakeEncoder{}, dir)
	err := codec.ExtractToDir(context.Background(), archive.FileMetadata{Path: path}, dest)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "001.jpg"))

	// second call is a no-op since dest already exists
	require.NoError(t, os.Remove(filepath.Join(dest, "001.jpg")))
	err = codec.ExtractToDir(context.Background(), archive.FileMetadata{Path: path}, dest)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dest, "001.jpg"))
}

func TestCodec_RepackZipStream_FullRangeReturnsSourceBytes(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{"001.jpg": "a"})

	codec := newTestCodec(&fakeReporter{}, &fakeEncoder{}, dir)
	stream, err := codec.RepackZipStream(context.Background(), archive.FileMetadata{Path: path})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestCodec_RepackZipStream_S5_ComicInfoAppendix(t *testing.T) {
	dir := t.TempDir()
	path := buildZipFile(t, dir, map[string]string{
		"001.jpg":       "a",
		"002.jpg":       "b",
		"ComicInfo.xml": "<ComicInfo/>",
	})

	codec := newTestCodec(&fakeReporter{}, &fakeEncoder{}, dir)

	rng0, err := archive.ParseRangeSpec("0-0")
	require.NoError(t, err)
	stream, err := codec.RepackZipStream(context.Background(), archive.FileMetadata{Path: path, PageRange: rng0})
	require.NoError(t, err)
	names := readZipNames(t, stream)
	assert.ElementsMatch(t, []string{"001.jpg", "ComicInfo.xml"}, names)

	rng1, err := archive.ParseRangeSpec("1-1")
	require.NoError(t, err)
	stream2, err := codec.RepackZipStream(context.Background(), archive.FileMetadata{Path: path, PageRange: rng1})
	require.NoError(t, err)
	names2 := readZipNames(t, stream2)
	assert.ElementsMatch(t, []string{"002.jpg"}, names2)
}

func readZipNames(t *testing.T, r io.ReadSeeker) []string {
	t.Helper()
	size, err := r.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	_, err = r.Seek(0, io.SeekStart)
	require.NoError(t, err)

	zr, err := zip.NewReader(r.(io.ReaderAt), size)
	require.NoError(t, err)

	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}
