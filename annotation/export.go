package annotation

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lewtec/photocheck/internal/domain"
)

// ExportStore is the part of the store Export reads.
type ExportStore interface {
	Path() string
	LoadQuestions(ctx context.Context) ([]*domain.Question, error)
	LoadImages(ctx context.Context) ([]*domain.Image, error)
	LoadAllAnswers(ctx context.Context) ([]*domain.Answer, error)
	ResolveImagePath(stored string) string
}

type ExportDocument struct {
	Database   string           `yaml:"database"`
	ExportedAt time.Time        `yaml:"exported_at"`
	Questions  []ExportQuestion `yaml:"questions"`
	Images     []ExportImage    `yaml:"images"`
}

type ExportQuestion struct {
	ID        int64  `yaml:"id"`
	Text      string `yaml:"text"`
	SortOrder int    `yaml:"sort_order"`
}

type ExportImage struct {
	ID           int64          `yaml:"id"`
	FilePath     string         `yaml:"file_path"`
	ResolvedPath string         `yaml:"resolved_path"`
	DisplayName  string         `yaml:"display_name,omitempty"`
	Answers      []ExportAnswer `yaml:"answers,omitempty"`
}

type ExportAnswer struct {
	QuestionID int64     `yaml:"question_id"`
	Value      string    `yaml:"value"`
	AnsweredAt time.Time `yaml:"answered_at"`
}

// BuildExport collects the whole store content into an ExportDocument.
func BuildExport(ctx context.Context, st ExportStore, now time.Time) (*ExportDocument, error) {
	questions, err := st.LoadQuestions(ctx)
	if err != nil {
		return nil, err
	}
	images, err := st.LoadImages(ctx)
	if err != nil {
		return nil, err
	}
	answers, err := st.LoadAllAnswers(ctx)
	if err != nil {
		return nil, err
	}

	byImage := make(map[int64][]ExportAnswer)
	for _, a := range answers {
		byImage[a.ImageID] = append(byImage[a.ImageID], ExportAnswer{
			QuestionID: a.QuestionID,
			Value:      a.Value.String(),
			AnsweredAt: a.AnsweredAt,
		})
	}

	doc := &ExportDocument{
		Database:   st.Path(),
		ExportedAt: now.UTC().Truncate(time.Second),
		Questions:  make([]ExportQuestion, 0, len(questions)),
		Images:     make([]ExportImage, 0, len(images)),
	}
	for _, q := range questions {
		doc.Questions = append(doc.Questions, ExportQuestion{ID: q.ID, Text: q.Text, SortOrder: q.SortOrder})
	}
	for _, img := range images {
		doc.Images = append(doc.Images, ExportImage{
			ID:           img.ID,
			FilePath:     img.FilePath,
			ResolvedPath: st.ResolveImagePath(img.FilePath),
			DisplayName:  img.DisplayName,
			Answers:      byImage[img.ID],
		})
	}
	return doc, nil
}

// Export writes the store content as a YAML document to w.
func Export(ctx context.Context, st ExportStore, w io.Writer) error {
	doc, err := BuildExport(ctx, st, time.Now())
	if err != nil {
		return fmt.Errorf("while collecting export data: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("while encoding export: %w", err)
	}
	return enc.Close()
}

// WriteFileAtomic writes through a temporary file in the target directory and
// renames it over filename once fn succeeded.
func WriteFileAtomic(filename string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(filename)
	tempFile := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(filename), uuid.New()))
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}
	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return err
	}
	return nil
}
