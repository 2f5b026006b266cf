package annotation

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lewtec/photocheck/internal/domain"
)

var (
	// ErrIncomplete is returned by SaveAndNext when a question has no answer.
	ErrIncomplete = errors.New("not every question is answered")
	// ErrLastImage is returned by SaveAndNext after saving the final image.
	ErrLastImage = errors.New("annotation finished: this was the last image")
	// ErrNoImages is returned by operations that need a current image.
	ErrNoImages = errors.New("no images to annotate")
)

// SessionStore is the part of the store an annotation session reads and writes.
type SessionStore interface {
	LoadQuestions(ctx context.Context) ([]*domain.Question, error)
	LoadImages(ctx context.Context) ([]*domain.Image, error)
	LoadAnswersForImage(ctx context.Context, imageID int64) (map[int64]domain.AnswerValue, error)
	SaveAnswers(ctx context.Context, imageID int64, answers map[int64]domain.AnswerValue) error
	ResolveImagePath(stored string) string
}

// Session steps through a snapshot of the images with a cursor.
// The snapshot is only refreshed by Reload.
type Session struct {
	store     SessionStore
	questions []*domain.Question
	images    []*domain.Image
	index     int
}

func NewSession(ctx context.Context, st SessionStore) (*Session, error) {
	s := &Session{store: st}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload refreshes questions and images and moves back to the first image.
func (s *Session) Reload(ctx context.Context) error {
	questions, err := s.store.LoadQuestions(ctx)
	if err != nil {
		return err
	}
	images, err := s.store.LoadImages(ctx)
	if err != nil {
		return err
	}
	s.questions = questions
	s.images = images
	s.index = 0
	return nil
}

func (s *Session) Questions() []*domain.Question { return s.questions }

func (s *Session) Images() []*domain.Image { return s.images }

func (s *Session) Index() int { return s.index }

// Current returns the image under the cursor or nil when there are no images.
func (s *Session) Current() *domain.Image {
	if len(s.images) == 0 {
		return nil
	}
	return s.images[s.index]
}

// Next moves forward and reports whether the cursor moved.
func (s *Session) Next() bool {
	if s.index >= len(s.images)-1 {
		return false
	}
	s.index++
	return true
}

// Prev moves backward and reports whether the cursor moved.
func (s *Session) Prev() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Seek moves to position i, clamped to the image range.
func (s *Session) Seek(i int) {
	switch {
	case len(s.images) == 0 || i < 0:
		s.index = 0
	case i >= len(s.images):
		s.index = len(s.images) - 1
	default:
		s.index = i
	}
}

// Progress renders the 1-based position as "i / n".
func (s *Session) Progress() string {
	if len(s.images) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.index+1, len(s.images))
}

// Answers returns the stored answers of the current image.
func (s *Session) Answers(ctx context.Context) (map[int64]domain.AnswerValue, error) {
	img := s.Current()
	if img == nil {
		return nil, ErrNoImages
	}
	return s.store.LoadAnswersForImage(ctx, img.ID)
}

// SkipToFirstIncomplete moves to the first image missing an answer.
// It reports false and stays put when every image is complete.
func (s *Session) SkipToFirstIncomplete(ctx context.Context) (bool, error) {
	for i, img := range s.images {
		answers, err := s.store.LoadAnswersForImage(ctx, img.ID)
		if err != nil {
			return false, err
		}
		if s.missing(answers) != nil {
			s.index = i
			return true, nil
		}
	}
	return false, nil
}

// SaveAndNext stores an answer for every question on the current image and
// advances. Saving the last image returns ErrLastImage after the write.
func (s *Session) SaveAndNext(ctx context.Context, answers map[int64]domain.AnswerValue) error {
	img := s.Current()
	if img == nil {
		return ErrNoImages
	}
	if len(s.questions) == 0 {
		return nil
	}
	if q := s.missing(answers); q != nil {
		return fmt.Errorf("%w: %q", ErrIncomplete, q.Text)
	}

	toSave := make(map[int64]domain.AnswerValue, len(s.questions))
	for _, q := range s.questions {
		toSave[q.ID] = answers[q.ID]
	}
	if err := s.store.SaveAnswers(ctx, img.ID, toSave); err != nil {
		return err
	}

	if !s.Next() {
		return ErrLastImage
	}
	return nil
}

func (s *Session) missing(answers map[int64]domain.AnswerValue) *domain.Question {
	for _, q := range s.questions {
		if _, ok := answers[q.ID]; !ok {
			return q
		}
	}
	return nil
}

// ResolvePath returns the absolute path of img.
func (s *Session) ResolvePath(img *domain.Image) string {
	return s.store.ResolveImagePath(img.FilePath)
}

// DisplayName prefers the stored display name and falls back to the file name.
func (s *Session) DisplayName(img *domain.Image) string {
	if img.DisplayName != "" {
		return img.DisplayName
	}
	if p := s.ResolvePath(img); p != "" {
		return filepath.Base(p)
	}
	return img.FilePath
}
