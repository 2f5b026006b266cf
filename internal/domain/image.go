package domain

import (
	"context"
)

// Image represents a photograph registered for annotation.
// FilePath is usually relative to the directory holding the database.
type Image struct {
	ID          int64
	FilePath    string
	DisplayName string
}

// ImageRepository defines the interface for image storage operations
type ImageRepository interface {
	// Upsert inserts an image or overwrites the display name of the one with the same path
	Upsert(ctx context.Context, filePath, displayName string) (int64, error)

	// GetByID retrieves an image by its ID
	GetByID(ctx context.Context, id int64) (*Image, error)

	// List retrieves all images ordered by ID
	List(ctx context.Context) ([]*Image, error)

	// ListByAnswer retrieves images whose answer to a question has the given value
	ListByAnswer(ctx context.Context, questionID int64, value AnswerValue) ([]*Image, error)

	// Count returns the total number of images
	Count(ctx context.Context) (int64, error)

	// CountCompleted returns the number of images with every question answered
	CountCompleted(ctx context.Context) (int64, error)

	// Delete removes an image by ID
	Delete(ctx context.Context, id int64) error
}
