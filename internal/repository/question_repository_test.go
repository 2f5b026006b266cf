package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lewtec/photocheck/internal/domain"
)

func TestQuestionRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)
	ctx := context.Background()

	t.Run("always inserts a new row", func(t *testing.T) {
		first, err := repo.Create(ctx, "Is it sharp?", 0)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		second, err := repo.Create(ctx, "Is it sharp?", 0)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if first == second {
			t.Error("Create should not deduplicate questions")
		}

		count, _ := repo.Count(ctx)
		if count != 2 {
			t.Errorf("Count = %v, want 2", count)
		}
	})
}

func TestQuestionRepository_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewQuestionRepository(db)
	ctx := context.Background()

	late, _ := repo.Create(ctx, "late", 5)
	tieA, _ := repo.Create(ctx, "tie a", 1)
	tieB, _ := repo.Create(ctx, "tie b", 1)
	first, _ := repo.Create(ctx, "first", -1)

	t.Run("orders by sort order then id", func(t *testing.T) {
		questions, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		want := []int64{first, tieA, tieB, late}
		if len(questions) != len(want) {
			t.Fatalf("Got %d questions, want %d", len(questions), len(want))
		}
		for i, q := range questions {
			if q.ID != want[i] {
				t.Errorf("questions[%d].ID = %v, want %v", i, q.ID, want[i])
			}
		}
	})
}

func TestQuestionRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	images := NewImageRepository(db)
	questions := NewQuestionRepository(db)
	answers := NewAnswerRepository(db)
	ctx := context.Background()

	img, _ := images.Upsert(ctx, "test/image.jpg", "")
	keep, _ := questions.Create(ctx, "keep", 0)
	drop, _ := questions.Create(ctx, "drop", 1)
	answers.Save(ctx, img, keep, domain.AnswerYes, time.Now())
	answers.Save(ctx, img, drop, domain.AnswerNo, time.Now())

	t.Run("deletes question and cascades to its answers only", func(t *testing.T) {
		if err := questions.Delete(ctx, drop); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		anns, err := answers.GetForImage(ctx, img)
		if err != nil {
			t.Fatalf("GetForImage() error = %v", err)
		}
		if len(anns) != 1 || anns[0].QuestionID != keep {
			t.Errorf("Expected only the answer to question %d, got %v", keep, anns)
		}
	})
}
