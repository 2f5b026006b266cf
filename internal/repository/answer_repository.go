package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lewtec/photocheck/internal/domain"
	"github.com/lewtec/photocheck/internal/sqlc"
)

// TimestampLayout is the layout of AnsweredAt, the same one SQLite's datetime('now') produces.
const TimestampLayout = "2006-01-02 15:04:05"

// AnswerRepository implements domain.AnswerRepository using SQLC
type AnswerRepository struct {
	queries *sqlc.Queries
}

// NewAnswerRepository creates a new AnswerRepository
func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{
		queries: sqlc.New(db),
	}
}

// NewAnswerRepositoryWithTx creates a new AnswerRepository with a transaction
func NewAnswerRepositoryWithTx(tx *sql.Tx) *AnswerRepository {
	return &AnswerRepository{
		queries: sqlc.New(tx),
	}
}

// Save creates or replaces the answer for the (image, question) pair
func (r *AnswerRepository) Save(ctx context.Context, imageID, questionID int64, value domain.AnswerValue, answeredAt time.Time) error {
	return r.queries.UpsertAnswer(ctx, sqlc.UpsertAnswerParams{
		ImageID:    imageID,
		QuestionID: questionID,
		Value:      int64(value),
		AnsweredAt: answeredAt.UTC().Format(TimestampLayout),
	})
}

// GetForImage retrieves all answers for a specific image
func (r *AnswerRepository) GetForImage(ctx context.Context, imageID int64) ([]*domain.Answer, error) {
	anns, err := r.queries.ListAnswersForImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	return toDomainAnswers(anns)
}

// List retrieves every answer
func (r *AnswerRepository) List(ctx context.Context) ([]*domain.Answer, error) {
	anns, err := r.queries.ListAnswers(ctx)
	if err != nil {
		return nil, err
	}

	return toDomainAnswers(anns)
}

// Count returns the total number of answers
func (r *AnswerRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountAnswers(ctx)
}

func toDomainAnswers(anns []sqlc.Answer) ([]*domain.Answer, error) {
	result := make([]*domain.Answer, len(anns))
	for i, ann := range anns {
		d, err := toDomainAnswer(ann)
		if err != nil {
			return nil, err
		}
		result[i] = d
	}
	return result, nil
}

// toDomainAnswer converts a sqlc.Answer to domain.Answer
func toDomainAnswer(ann sqlc.Answer) (*domain.Answer, error) {
	answeredAt, err := parseTimestamp(ann.AnsweredAt)
	if err != nil {
		return nil, fmt.Errorf("while parsing answer time of image %d question %d: %w", ann.ImageID, ann.QuestionID, err)
	}
	return &domain.Answer{
		ImageID:    ann.ImageID,
		QuestionID: ann.QuestionID,
		Value:      domain.AnswerValue(ann.Value),
		AnsweredAt: answeredAt,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Verify that AnswerRepository implements domain.AnswerRepository
var _ domain.AnswerRepository = (*AnswerRepository)(nil)
