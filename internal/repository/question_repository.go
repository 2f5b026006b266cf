package repository

import (
	"context"
	"database/sql"

	"github.com/lewtec/photocheck/internal/domain"
	"github.com/lewtec/photocheck/internal/sqlc"
)

// QuestionRepository implements domain.QuestionRepository using SQLC
type QuestionRepository struct {
	queries *sqlc.Queries
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{
		queries: sqlc.New(db),
	}
}

// NewQuestionRepositoryWithTx creates a new QuestionRepository with a transaction
func NewQuestionRepositoryWithTx(tx *sql.Tx) *QuestionRepository {
	return &QuestionRepository{
		queries: sqlc.New(tx),
	}
}

// Create inserts a new question; questions are never deduplicated
func (r *QuestionRepository) Create(ctx context.Context, text string, sortOrder int) (int64, error) {
	return r.queries.InsertQuestion(ctx, sqlc.InsertQuestionParams{
		Text:      text,
		SortOrder: int64(sortOrder),
	})
}

// List retrieves all questions ordered by sort order, then ID
func (r *QuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	questions, err := r.queries.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Question, len(questions))
	for i, q := range questions {
		result[i] = &domain.Question{
			ID:        q.ID,
			Text:      q.Text,
			SortOrder: int(q.SortOrder),
		}
	}

	return result, nil
}

// Count returns the total number of questions
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountQuestions(ctx)
}

// Delete removes a question by ID
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	return r.queries.DeleteQuestion(ctx, id)
}

// Verify that QuestionRepository implements domain.QuestionRepository
var _ domain.QuestionRepository = (*QuestionRepository)(nil)
