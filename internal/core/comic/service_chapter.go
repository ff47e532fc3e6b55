// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/buivan/yomira/internal/core/archive"
	"github.com/buivan/yomira/internal/platform/apperr"
	"github.com/buivan/yomira/internal/platform/validate"
	"github.com/buivan/yomira/pkg/uuid"
)

// # Chapter Operations

/*
ListChapters retrieves serialisation data for a comic.

Parameters:
  - context: context.Context
  - comicID: string (Owner ID)
  - f: ChapterFilter (Language and sorting options)
  - limit: int
  - offset: int

Returns:
  - []*Chapter: Metadata for matched chapters
  - int: Total chapter count for the given comic/filter
  - error: Storage or execution errors
*/
func (service *Service) ListChapters(context context.Context, comicID string, f ChapterFilter, limit, offset int) ([]*Chapter, int, error) {
	return service.chapterRepo.ListByComic(context, comicID, f, limit, offset)
}

/*
GetChapter retrieves metadata for a single chapter by its ID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Chapter: The hydrated domain entity
  - error: ErrNotFound if not found
*/
func (service *Service) GetChapter(context context.Context, id string) (*Chapter, error) {
	return service.chapterRepo.FindByID(context, id)
}

/*
CreateChapter initialises a new chapter entry.

Description: Ensures the chapter is linked to a valid comic,
applies basic sanity checks on chapter numbering, and persists
the metadata. When SourceArchivePath is set, the archive is opened
immediately so a malformed upload is rejected before it is persisted.

Parameters:
  - context: context.Context
  - chapter: *Chapter (The new chapter data)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateChapter(context context.Context, chapter *Chapter) error {

	// Identity & Mandatory field generation
	if chapter.ID == "" {
		chapter.ID = uuid.New()
	}

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldComicID, chapter.ComicID)
	validator.Required(FieldLanguage, chapter.Language)

	// Negative chapter numbers are logically invalid for serialisation
	validator.Custom(FieldChapterNumber, chapter.Number < 0, "Chapter number cannot be negative")

	if err := validator.Err(); err != nil {
		return err
	}

	if chapter.SourceArchivePath != "" && !service.archiveCodec.CanOpen(chapter.SourceArchivePath) {
		return apperr.ValidationError("chapter source archive is not a supported format")
	}

	// Storage persistence
	return service.chapterRepo.Create(context, chapter)
}

/*
MarkChapterAsRead records reading progress for the acting user.

Parameters:
  - context: context.Context
  - chapterID: string (UUID)
  - userID: string (UUID)

Returns:
  - error: Storage failures
*/
func (service *Service) MarkChapterAsRead(context context.Context, chapterID, userID string) error {
	return service.chapterRepo.MarkAsRead(context, chapterID, userID)
}

// # Archive-backed Pages

/*
ListChapterPages resolves the page list for a chapter.

Description: If the chapter has already had its pages synced to
individually hosted CDN URLs, those rows are returned as-is. Otherwise,
when the chapter carries a SourceArchivePath, the archive is opened
directly and its images are listed on demand without touching storage.

Parameters:
  - context: context.Context
  - chapterID: string (UUID)

Returns:
  - []*Page: Ordered page metadata
  - error: ErrNotFound if the chapter is missing, or archive decode failures
*/
func (service *Service) ListChapterPages(context context.Context, chapterID string) ([]*Page, error) {
	pages, err := service.chapterRepo.ListPages(context, chapterID)
	if err != nil {
		return nil, err
	}
	if len(pages) > 0 {
		return pages, nil
	}

	chapter, err := service.chapterRepo.FindByID(context, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter.SourceArchivePath == "" {
		return nil, nil
	}

	infos := service.archiveCodec.ListPages(context, archive.FileMetadata{
		Path:     chapter.SourceArchivePath,
		FileSize: -1,
	})

	pages = make([]*Page, 0, len(infos))
	for _, info := range infos {
		pages = append(pages, &Page{
			ChapterID:  chapterID,
			PageNumber: info.Index + 1,
			ImageURL:   fmt.Sprintf("/api/v1/comics/chapters/%s/pages/%d", chapterID, info.Index+1),
		})
	}
	return pages, nil
}

/*
SyncChapterPages extracts the page list from a chapter's source archive
and persists it as individually addressable [Page] rows.

Parameters:
  - context: context.Context
  - chapterID: string (UUID)

Returns:
  - []*Page: The pages that were persisted
  - error: ErrNotFound, a missing source archive, or storage failures
*/
func (service *Service) SyncChapterPages(context context.Context, chapterID string) ([]*Page, error) {
	chapter, err := service.chapterRepo.FindByID(context, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter.SourceArchivePath == "" {
		return nil, apperr.ValidationError("chapter has no source archive to sync from")
	}

	infos := service.archiveCodec.ListPages(context, archive.FileMetadata{
		Path:     chapter.SourceArchivePath,
		FileSize: -1,
	})

	pages := make([]*Page, 0, len(infos))
	for _, info := range infos {
		pages = append(pages, &Page{
			ID:         uuid.New(),
			ChapterID:  chapterID,
			PageNumber: info.Index + 1,
			ImageURL:   fmt.Sprintf("/api/v1/comics/chapters/%s/pages/%d", chapterID, info.Index+1),
		})
	}

	if err := service.chapterRepo.CreatePages(context, pages); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_pages_synced",
		slog.String("chapter_id", chapterID),
		slog.Int("page_count", len(pages)),
	)

	return pages, nil
}

/*
ChapterCoverImage extracts and caches a thumbnail of the cover page that
the archive codec elects from the chapter's source archive.

Parameters:
  - context: context.Context
  - chapterID: string (UUID)
  - size: int (Target square dimension in pixels; 0 keeps native size)

Returns:
  - string: Filesystem path to the cached cover image
  - error: ErrNotFound, missing archive, or extraction failures
*/
func (service *Service) ChapterCoverImage(context context.Context, chapterID string, size int) (string, error) {
	chapter, err := service.chapterRepo.FindByID(context, chapterID)
	if err != nil {
		return "", err
	}
	if chapter.SourceArchivePath == "" {
		return "", apperr.ValidationError("chapter has no source archive")
	}

	outName := chapterID + ".jpg"
	path := service.archiveCodec.CoverImage(context, archive.FileMetadata{
		Path:     chapter.SourceArchivePath,
		FileSize: -1,
	}, outName, service.coverCacheDir, "jpeg", size)

	if path == "" {
		return "", apperr.ValidationError("failed to derive cover image from chapter archive")
	}
	return path, nil
}

/*
RepackChapterArchive returns a chapter's source archive for direct
download. It passes no page range to the archive codec, so the source
file's bytes come back unchanged, without filtering or ZIP conversion.

Parameters:
  - context: context.Context
  - chapterID: string (UUID)

Returns:
  - io.ReadSeeker: The source archive content
  - error: ErrNotFound, missing archive, or repack failures
*/
func (service *Service) RepackChapterArchive(context context.Context, chapterID string) (io.ReadSeeker, error) {
	chapter, err := service.chapterRepo.FindByID(context, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter.SourceArchivePath == "" {
		return nil, apperr.ValidationError("chapter has no source archive")
	}

	return service.archiveCodec.RepackZipStream(context, archive.FileMetadata{
		Path:     chapter.SourceArchivePath,
		FileSize: -1,
	})
}
