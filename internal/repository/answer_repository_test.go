package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lewtec/photocheck/internal/domain"
)

func setupTestRepositories(t *testing.T) (*ImageRepository, *QuestionRepository, *AnswerRepository, context.Context) {
	t.Helper()
	db := SetupTestDB(t)
	t.Cleanup(func() { CleanupTestDB(t, db) })

	return NewImageRepository(db), NewQuestionRepository(db), NewAnswerRepository(db), context.Background()
}

func TestAnswerRepository_Save(t *testing.T) {
	imgRepo, qRepo, annRepo, ctx := setupTestRepositories(t)

	img, err := imgRepo.Upsert(ctx, "test/image.jpg", "test.jpg")
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	q, err := qRepo.Create(ctx, "Visible?", 0)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	t.Run("creates answer successfully", func(t *testing.T) {
		if err := annRepo.Save(ctx, img, q, domain.AnswerYes, at); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		anns, err := annRepo.GetForImage(ctx, img)
		if err != nil {
			t.Fatalf("GetForImage() error = %v", err)
		}
		if len(anns) != 1 {
			t.Fatalf("Got %d answers, want 1", len(anns))
		}
		if anns[0].Value != domain.AnswerYes {
			t.Errorf("Value = %v, want %v", anns[0].Value, domain.AnswerYes)
		}
		if !anns[0].AnsweredAt.Equal(at) {
			t.Errorf("AnsweredAt = %v, want %v", anns[0].AnsweredAt, at)
		}
	})

	t.Run("replaces existing answer", func(t *testing.T) {
		later := at.Add(time.Hour)
		if err := annRepo.Save(ctx, img, q, domain.AnswerNo, later); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		anns, _ := annRepo.GetForImage(ctx, img)
		if len(anns) != 1 {
			t.Fatalf("Got %d answers, want 1", len(anns))
		}
		if anns[0].Value != domain.AnswerNo {
			t.Errorf("Value = %v, want %v", anns[0].Value, domain.AnswerNo)
		}
		if !anns[0].AnsweredAt.Equal(later) {
			t.Errorf("AnsweredAt = %v, want %v", anns[0].AnsweredAt, later)
		}
	})

	t.Run("rejects unknown image", func(t *testing.T) {
		if err := annRepo.Save(ctx, 9999, q, domain.AnswerYes, at); err == nil {
			t.Error("Expected foreign key error for unknown image")
		}
	})

	t.Run("rejects out of range value", func(t *testing.T) {
		if err := annRepo.Save(ctx, img, q, domain.AnswerValue(7), at); err == nil {
			t.Error("Expected check constraint error for value 7")
		}
	})
}

func TestAnswerRepository_GetForImage(t *testing.T) {
	imgRepo, qRepo, annRepo, ctx := setupTestRepositories(t)

	img1, _ := imgRepo.Upsert(ctx, "test/1.jpg", "")
	img2, _ := imgRepo.Upsert(ctx, "test/2.jpg", "")
	q1, _ := qRepo.Create(ctx, "One?", 0)
	q2, _ := qRepo.Create(ctx, "Two?", 1)
	annRepo.Save(ctx, img1, q2, domain.AnswerUnknown, time.Now())
	annRepo.Save(ctx, img1, q1, domain.AnswerYes, time.Now())
	annRepo.Save(ctx, img2, q1, domain.AnswerNo, time.Now())

	t.Run("retrieves only answers of the image", func(t *testing.T) {
		anns, err := annRepo.GetForImage(ctx, img1)
		if err != nil {
			t.Fatalf("GetForImage() error = %v", err)
		}
		if len(anns) != 2 {
			t.Fatalf("Got %d answers, want 2", len(anns))
		}
		if anns[0].QuestionID != q1 {
			t.Error("Answers should be ordered by question id")
		}
	})

	t.Run("returns empty for unknown image", func(t *testing.T) {
		anns, err := annRepo.GetForImage(ctx, 9999)
		if err != nil {
			t.Fatalf("GetForImage() error = %v", err)
		}
		if len(anns) != 0 {
			t.Errorf("Got %d answers, want 0", len(anns))
		}
	})

	t.Run("lists every answer", func(t *testing.T) {
		anns, err := annRepo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(anns) != 3 {
			t.Errorf("Got %d answers, want 3", len(anns))
		}
	})
}

func TestAnswerRepository_LegacyTimestamp(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	MustExec(t, db, "INSERT INTO Images (Id, FilePath) VALUES (1, 'a.jpg')")
	MustExec(t, db, "INSERT INTO Questions (Id, Text) VALUES (1, 'q')")
	// rows written by older versions rely on the column default
	MustExec(t, db, "INSERT INTO Answers (ImageId, QuestionId, Value) VALUES (1, 1, 2)")

	anns, err := NewAnswerRepository(db).GetForImage(ctx, 1)
	if err != nil {
		t.Fatalf("GetForImage() error = %v", err)
	}
	if len(anns) != 1 || anns[0].AnsweredAt.IsZero() {
		t.Errorf("Expected one answer with a parsed timestamp, got %v", anns)
	}
}

func BenchmarkAnswerRepository_Save(b *testing.B) {
	db := SetupTestDB(b)
	defer db.Close()

	ctx := context.Background()
	img, _ := NewImageRepository(db).Upsert(ctx, "test/image.jpg", "test.jpg")
	q, _ := NewQuestionRepository(db).Create(ctx, "q", 0)
	annRepo := NewAnswerRepository(db)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		annRepo.Save(ctx, img, q, domain.AnswerYes, time.Now())
	}
}
