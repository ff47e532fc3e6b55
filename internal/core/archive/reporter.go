// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import "log/slog"

// slogErrorReporter is the default [MediaErrorReporter], logging every
// report as a structured warning so per-archive failures show up in
// aggregate log queries without aborting the surrounding scan.
type slogErrorReporter struct {
	logger *slog.Logger
}

// NewSlogErrorReporter returns a [MediaErrorReporter] backed by logger.
func NewSlogErrorReporter(logger *slog.Logger) MediaErrorReporter {
	return &slogErrorReporter{logger: logger}
}

var _ MediaErrorReporter = (*slogErrorReporter)(nil)

func (r *slogErrorReporter) Report(path, producer, message string, cause error) {
	r.logger.Warn("media error reported",
		"path", path,
		"producer", producer,
		"message", message,
		"error", cause,
	)
}
