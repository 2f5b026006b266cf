package repository

import (
	"context"
	"database/sql"

	"github.com/lewtec/photocheck/internal/domain"
	"github.com/lewtec/photocheck/internal/sqlc"
)

// ImageRepository implements domain.ImageRepository using SQLC
type ImageRepository struct {
	queries *sqlc.Queries
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{
		queries: sqlc.New(db),
	}
}

// NewImageRepositoryWithTx creates a new ImageRepository with a transaction
func NewImageRepositoryWithTx(tx *sql.Tx) *ImageRepository {
	return &ImageRepository{
		queries: sqlc.New(tx),
	}
}

// Upsert inserts the image or overwrites the display name of the row with the same path.
// The two statements are only atomic when the repository runs inside a transaction.
func (r *ImageRepository) Upsert(ctx context.Context, filePath, displayName string) (int64, error) {
	params := sqlc.UpsertImageParams{
		FilePath: filePath,
		DisplayName: sql.NullString{
			String: displayName,
			Valid:  displayName != "",
		},
	}

	if err := r.queries.UpsertImage(ctx, params); err != nil {
		return 0, err
	}

	return r.queries.GetImageIDByPath(ctx, filePath)
}

// GetByID retrieves an image by its ID
func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*domain.Image, error) {
	img, err := r.queries.GetImage(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return toDomainImage(img), nil
}

// List retrieves all images
func (r *ImageRepository) List(ctx context.Context) ([]*domain.Image, error) {
	images, err := r.queries.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	return toDomainImages(images), nil
}

// ListByAnswer retrieves images whose answer to questionID equals value
func (r *ImageRepository) ListByAnswer(ctx context.Context, questionID int64, value domain.AnswerValue) ([]*domain.Image, error) {
	params := sqlc.ListImagesByAnswerParams{
		QuestionID: questionID,
		Value:      int64(value),
	}

	images, err := r.queries.ListImagesByAnswer(ctx, params)
	if err != nil {
		return nil, err
	}

	return toDomainImages(images), nil
}

// Count returns the total number of images
func (r *ImageRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountImages(ctx)
}

// CountCompleted returns the number of images with an answer for every question
func (r *ImageRepository) CountCompleted(ctx context.Context) (int64, error) {
	return r.queries.CountCompletedImages(ctx)
}

// Delete removes an image by ID
func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	return r.queries.DeleteImage(ctx, id)
}

// toDomainImage converts a sqlc.Image to domain.Image
func toDomainImage(img sqlc.Image) *domain.Image {
	return &domain.Image{
		ID:          img.ID,
		FilePath:    img.FilePath,
		DisplayName: img.DisplayName.String,
	}
}

func toDomainImages(images []sqlc.Image) []*domain.Image {
	result := make([]*domain.Image, len(images))
	for i, img := range images {
		result[i] = toDomainImage(img)
	}
	return result
}

// Verify that ImageRepository implements domain.ImageRepository
var _ domain.ImageRepository = (*ImageRepository)(nil)
