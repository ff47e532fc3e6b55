// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"errors"
	"net/http"

	"github.com/buivan/yomira/internal/platform/apperr"
)

// Kind is a machine-readable, language-neutral error classification for
// the archive codec. It intentionally does not reuse apperr.AppError's
// Code field: the two live at different layers (codec internals vs HTTP
// response), and only one call site (ToAppError) needs to bridge them.
type Kind string

const (
	// KindNotAnArchive: path exists, extension unknown or content is not
	// an archive.
	KindNotAnArchive Kind = "NOT_AN_ARCHIVE"
	// KindUnsupported: the family probe exhausted all backends.
	KindUnsupported Kind = "UNSUPPORTED"
	// KindCorrupt: backend raised while reading archive structure.
	KindCorrupt Kind = "CORRUPT"
	// KindIo: backend raised on a lower-level I/O failure.
	KindIo Kind = "IO"
	// KindEntryMissing: an expected entry (explicit cover, sidecar) is absent.
	KindEntryMissing Kind = "ENTRY_MISSING"
	// KindRangeOutOfBounds: the requested page range exceeds the filtered list.
	KindRangeOutOfBounds Kind = "RANGE_OUT_OF_BOUNDS"
	// KindMalformedRange: the range string failed to parse.
	KindMalformedRange Kind = "MALFORMED_RANGE"
	// KindMalformedSidecar: ComicInfo.xml failed to parse as XML.
	KindMalformedSidecar Kind = "MALFORMED_SIDECAR"
	// KindExtractFailed: extract_to_dir aborted partway through.
	KindExtractFailed Kind = "EXTRACT_FAILED"
	// KindCancelled: the caller's context was cancelled between entries.
	KindCancelled Kind = "CANCELLED"
)

// Error is the archive codec's canonical error type. It carries a
// machine-readable Kind, a human-readable Message, and an optional Cause
// for server-side logging — the same three-field shape as
// [apperr.AppError], deliberately, so error handling reads the same way
// across layers even though this package never imports apperr directly
// in its core logic.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &archive.Error{Kind: archive.KindCorrupt}).
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// newError constructs an *Error, wrapping cause when present.
func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// ErrExtractFailed is the sentinel kind rethrown by [Codec.ExtractToDir];
// wrap it with a cause via errors.Is / errors.As, never compare directly.
var ErrExtractFailed = &Error{Kind: KindExtractFailed, Message: "extraction failed"}

// ToAppError bridges an *Error into the HTTP-facing [apperr.AppError].
// No package in this module calls it; the comic HTTP handlers build
// their own apperr values.
func ToAppError(err error) *apperr.AppError {
	var ae *Error
	if !errors.As(err, &ae) {
		return apperr.Internal(err)
	}

	switch ae.Kind {
	case KindNotAnArchive, KindUnsupported:
		return &apperr.AppError{
			Code:       "UNSUPPORTED_ARCHIVE",
			Message:    ae.Message,
			HTTPStatus: http.StatusUnprocessableEntity,
			Cause:      ae.Cause,
		}
	case KindEntryMissing:
		return apperr.NotFound("Page")
	case KindRangeOutOfBounds, KindMalformedRange:
		return apperr.ValidationError(ae.Message)
	case KindCancelled:
		return &apperr.AppError{
			Code:       "CANCELLED",
			Message:    ae.Message,
			HTTPStatus: 499,
			Cause:      ae.Cause,
		}
	default:
		return apperr.Internal(err)
	}
}
