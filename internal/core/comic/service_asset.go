// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"fmt"

	"github.com/buivan/yomira/internal/core/archive"
	"github.com/buivan/yomira/internal/platform/apperr"
	"github.com/buivan/yomira/internal/platform/validate"
	"github.com/buivan/yomira/pkg/uuid"
)

// # Assets & Media

/*
ListCovers returns all available cover variants for a comic.

Parameters:
  - context: context.Context
  - comicID: string (UUID)

Returns:
  - []*Cover: List of covers
  - error: Storage failures
*/
func (service *Service) ListCovers(context context.Context, comicID string) ([]*Cover, error) {
	return service.comicRepo.ListCovers(context, comicID)
}

/*
AddCover attaches a new volume or variant cover to a comic.

Parameters:
  - context: context.Context
  - cover: *Cover

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) AddCover(context context.Context, cover *Cover) error {
	if cover.ID == "" {
		cover.ID = uuid.New()
	}

	validator := &validate.Validator{}
	validator.Required(FieldComicID, cover.ComicID)
	validator.Required(FieldImageURL, cover.ImageURL).URL(FieldImageURL, cover.ImageURL)

	if err := validator.Err(); err != nil {
		return err
	}

	return service.comicRepo.AddCover(context, cover)
}

/*
DeleteCover removes a specific cover by ID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Storage failures
*/
func (service *Service) DeleteCover(context context.Context, id string) error {
	return service.comicRepo.DeleteCover(context, id)
}

/*
ListArt retrieves the gallery or fanart images for a comic.

Parameters:
  - context: context.Context
  - comicID: string (UUID)
  - onlyApproved: bool (Filter for public view)

Returns:
  - []*Art: Gallery images
  - error: Storage failures
*/
func (service *Service) ListArt(context context.Context, comicID string, onlyApproved bool) ([]*Art, error) {
	return service.comicRepo.ListArt(context, comicID, onlyApproved)
}

/*
AddArt submits a new gallery image for a comic.

Parameters:
  - context: context.Context
  - art: *Art

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) AddArt(context context.Context, art *Art) error {
	if art.ID == "" {
		art.ID = uuid.New()
	}

	validator := &validate.Validator{}
	validator.Required(FieldComicID, art.ComicID)
	validator.Required(FieldUploaderID, art.UploaderID)
	validator.Required(FieldImageURL, art.ImageURL).URL(FieldImageURL, art.ImageURL)

	if err := validator.Err(); err != nil {
		return err
	}

	return service.comicRepo.AddArt(context, art)
}

/*
DeleteArt removes a gallery image.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Storage failures
*/
func (service *Service) DeleteArt(context context.Context, id string) error {
	return service.comicRepo.DeleteArt(context, id)
}

/*
ApproveArt toggles the visibility of a gallery image (Moderation).

Parameters:
  - context: context.Context
  - id: string (UUID)
  - approved: bool

Returns:
  - error: Storage failures
*/
func (service *Service) ApproveArt(context context.Context, id string, approved bool) error {
	return service.comicRepo.ApproveArt(context, id, approved)
}

/*
AddCoverFromArchive derives a cover image directly from a comic volume
archive instead of an already-hosted URL, then attaches it the same way
[AddCover] does.

Description: Elects the archive's cover image per its four-tier
heuristic, extracts it to the cover cache directory, and records the
result as a local [Cover] entity pointing at the extracted file.

Parameters:
  - context: context.Context
  - comicID: string (UUID)
  - archivePath: string (CBZ/CBR/ZIP/TAR.GZ/7z on the library filesystem)
  - volume: *int (Optional volume label)

Returns:
  - *Cover: The persisted cover
  - error: Unsupported archive format, extraction failures, or validation errors
*/
func (service *Service) AddCoverFromArchive(context context.Context, comicID, archivePath string, volume *int) (*Cover, error) {
	if !service.archiveCodec.CanOpen(archivePath) {
		return nil, apperr.ValidationError("cover source is not a supported archive format")
	}

	coverID := uuid.New()
	outName := coverID + ".jpg"
	outPath := service.archiveCodec.CoverImage(context, archive.FileMetadata{
		Path:     archivePath,
		FileSize: -1,
	}, outName, service.coverCacheDir, "jpeg", 0)
	if outPath == "" {
		return nil, apperr.ValidationError("failed to extract cover image from archive")
	}

	cover := &Cover{
		ID:       coverID,
		ComicID:  comicID,
		Volume:   volume,
		ImageURL: fmt.Sprintf("/api/v1/comics/%s/covers/%s/file", comicID, coverID),
	}

	validator := &validate.Validator{}
	validator.Required(FieldComicID, cover.ComicID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.comicRepo.AddCover(context, cover); err != nil {
		return nil, err
	}
	return cover, nil
}
