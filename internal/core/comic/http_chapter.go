// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"net/http"
	"strconv"
	"time"

	"github.com/buivan/yomira/internal/platform/apperr"
	requestutil "github.com/buivan/yomira/internal/platform/request"
	"github.com/buivan/yomira/internal/platform/respond"
	"github.com/buivan/yomira/pkg/pagination"
)

// # Chapter Endpoints

/*
GET /api/v1/comics/{comicID}/chapters.

Description: Returns a paginated roster of chapters for a specific comic.

Request:
  - comicID: string (UUID)
  - lang: string (Filter by language code)
  - dir: string (asc, desc)
  - limit: int
  - page: int

Response:
  - 200: []Chapter: Paginated list
  - 404: 404: ErrNotFound: Comic not found
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	// Extract comic ID from URL
	comicID := requestutil.ID(request, "comicID")

	// Pagination extraction using pkg/pagination
	paginationParams := pagination.FromRequest(request)

	// Build filter
	filter := ChapterFilter{
		Language: request.URL.Query().Get("lang"),
		SortDir:  request.URL.Query().Get("dir"),
	}

	// Domain Logic Execution
	chapters, total, err := handler.service.ListChapters(request.Context(), comicID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, map[string]any{
		FieldItems: chapters,
		FieldTotal: total,
	})
}

// # Chapter Creation

// createChapterRequest defines the inbound JSON schema for individual uploads.
type createChapterRequest struct {
	Number            float64 `json:"number"`
	Title             string  `json:"title"`
	Language          string  `json:"language"`
	SourceArchivePath string  `json:"source_archive_path,omitempty"`
}

/*
POST /api/v1/comics/{comicID}/chapters.

Description: Creates a new chapter record for a comic. When
source_archive_path is set, the chapter's pages are served on demand
from that CBZ/CBR/ZIP/TAR.GZ/7z file instead of individually hosted URLs.

Request:
  - comicID: string (UUID)
  - body: createChapterRequest

Response:
  - 201: Chapter: Created chapter object
  - 400: 400: ErrInvalidJSON/Validation: Invalid payload
  - 401: 401: ErrUnauthorized: Authentication required
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	// Extract comic ID from URL
	comicID := requestutil.ID(request, "comicID")

	// Strict JSON decoding
	var input createChapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Map DTO to Domain Entity
	chapterDto := &Chapter{
		ComicID:           comicID,
		Number:            input.Number,
		Title:             input.Title,
		Language:          input.Language,
		SourceArchivePath: input.SourceArchivePath,
	}

	// Domain Logic Execution
	if err := handler.service.CreateChapter(request.Context(), chapterDto); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, chapterDto)
}

/*
POST /api/v1/comics/{comicID}/chapters/{id}/sync-pages.

Description: Opens the chapter's source archive and persists its page
list as individually addressable [Page] rows.

Request:
  - id: string (Chapter UUID)

Response:
  - 200: []Page: Synced pages
  - 400: 400: Validation: Chapter has no source archive
  - 404: 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) syncChapterPages(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")

	pages, err := handler.service.SyncChapterPages(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pages)
}

/*
GET /api/v1/comics/chapters/{id}/pages.

Description: Resolves the ordered page list for a chapter, decoding
the source archive on demand when pages have not been synced to
individually hosted URLs.

Request:
  - id: string (Chapter UUID)

Response:
  - 200: []Page: Ordered page metadata
  - 404: 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) listChapterPages(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")

	pages, err := handler.service.ListChapterPages(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pages)
}

/*
GET /api/v1/comics/chapters/{id}/cover.

Description: Serves a thumbnail of the cover page extracted from the
chapter's source archive; the thumbnail is written anew on every request.

Request:
  - id: string (Chapter UUID)
  - size: int (Optional target dimension in pixels)

Response:
  - 200: image/jpeg: Cover thumbnail bytes
  - 400: 400: Validation: Chapter has no source archive
  - 404: 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) chapterCoverImage(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")

	size := 0
	if raw := request.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("size must be an integer"))
			return
		}
		size = parsed
	}

	path, err := handler.service.ChapterCoverImage(request.Context(), chapterID, size)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.ServeFile(writer, request, path)
}

/*
GET /api/v1/comics/chapters/{id}/download.

Description: Streams the chapter's source archive file as stored; no
page range is applied, so entries are neither filtered nor repacked.

Request:
  - id: string (Chapter UUID)

Response:
  - 200: application/zip: Source archive content
  - 400: 400: Validation: Chapter has no source archive
  - 404: 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) downloadChapterArchive(writer http.ResponseWriter, request *http.Request) {
	chapterID := requestutil.ID(request, "id")

	stream, err := handler.service.RepackChapterArchive(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "application/zip")
	writer.Header().Set("Content-Disposition", `attachment; filename="`+chapterID+`.zip"`)
	http.ServeContent(writer, request, chapterID+".zip", time.Time{}, stream)
}

/*
POST /api/v1/comics/chapters/{id}/read.

Description: Records that the current user has completed reading a chapter.
Used for synchronising reading progress across devices.

Request:
  - id: string (Chapter UUID)

Response:
  - 200: Message: Success
  - 401: 401: ErrUnauthorized: Login required to track reading progress
  - 404: 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) markAsRead(writer http.ResponseWriter, request *http.Request) {

	// Variable targets
	chapterID := requestutil.ID(request, "id")

	// Session Validation
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.Error(writer, request, apperr.Unauthorized("Login required to track reading progress"))
		return
	}

	// Map identities
	userID := claims.UserID

	// Logic Dispatch
	if err := handler.service.MarkChapterAsRead(request.Context(), chapterID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Feedback
	respond.OK(writer, map[string]string{FieldMessage: "Chapter marked as read"})
}
