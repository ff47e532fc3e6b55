// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// imagingEncoder is the default [ImageEncoder]: it decodes the source
// stream (auto-orienting on EXIF rotation), fits it into a size x size
// box preserving aspect ratio, and re-encodes to the requested format.
type imagingEncoder struct {
	quality int
}

// NewImagingEncoder returns the default cover-thumbnail encoder, backed
// by github.com/disintegration/imaging.
func NewImagingEncoder() ImageEncoder {
	return &imagingEncoder{quality: 85}
}

var _ ImageEncoder = (*imagingEncoder)(nil)

func (e *imagingEncoder) WriteCoverThumbnail(stream io.Reader, outName, outDir, format string, size int) (string, error) {
	img, err := imaging.Decode(stream, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode cover source: %w", err)
	}

	if size > 0 {
		img = imaging.Fit(img, size, size, imaging.Lanczos)
	}

	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "" {
		format = "jpg"
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure cover dir: %w", err)
	}

	outPath := filepath.Join(outDir, outName+"."+format)

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create cover thumbnail: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imagingFormatFor(format), imaging.JPEGQuality(e.quality)); err != nil {
		return "", fmt.Errorf("encode cover thumbnail: %w", err)
	}

	return outPath, nil
}

func imagingFormatFor(ext string) imaging.Format {
	switch ext {
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.JPEG
	}
}
