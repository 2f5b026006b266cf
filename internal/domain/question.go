package domain

import "context"

// Question is one entry of the annotation checklist.
type Question struct {
	ID        int64
	Text      string
	SortOrder int
}

// QuestionRepository defines the interface for question storage operations
type QuestionRepository interface {
	// Create inserts a new question and returns its ID
	Create(ctx context.Context, text string, sortOrder int) (int64, error)

	// List retrieves all questions ordered by sort order, then ID
	List(ctx context.Context) ([]*Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int64, error)

	// Delete removes a question by ID
	Delete(ctx context.Context, id int64) error
}
