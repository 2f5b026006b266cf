package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lewtec/photocheck/internal/repository"
)

// DefaultQuestions is the checklist written into a newly created database.
var DefaultQuestions = []string{
	"Is the object visible?",
	"Is a defect present?",
	"Are you unsure?",
}

// seedQuestions inserts DefaultQuestions when the Questions table is empty.
func seedQuestions(ctx context.Context, db *sql.DB) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("while starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	repo := repository.NewQuestionRepositoryWithTx(tx)
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("while counting questions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i, text := range DefaultQuestions {
		if _, err := repo.Create(ctx, text, i); err != nil {
			return 0, fmt.Errorf("while seeding question %q: %w", text, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("while committing seed: %w", err)
	}
	return len(DefaultQuestions), nil
}
