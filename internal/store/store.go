// Package store is the persistent annotation store: a single-file SQLite
// database holding images, checklist questions and the answers given per image.
//
// A Store is meant for one caller issuing one operation at a time. Every write
// runs in its own transaction, so a failing call never leaves partial rows.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lewtec/photocheck/internal/domain"
	applog "github.com/lewtec/photocheck/internal/log"
	"github.com/lewtec/photocheck/internal/repository"
)

const dsnPragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"

// dsn builds a file: URI for abs. The path is percent-escaped so characters
// such as '?' and '#' stay part of the file name instead of the query.
func dsn(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p, RawQuery: dsnPragmas}).String()
}

// Stats summarizes the content of a store.
type Stats struct {
	Images          int64
	Questions       int64
	CompletedImages int64
	Answers         int64
}

// Store is an open annotation database.
type Store struct {
	db      *sql.DB
	path    string
	baseDir string
	logger  *slog.Logger

	// now stamps AnsweredAt; replaced in tests
	now func() time.Time
}

// Open opens the database at path, creating the file and its parent
// directories when absent. The schema is migrated on every open and the
// default questions are seeded only when the file did not exist before.
func Open(ctx context.Context, path string) (*Store, error) {
	logger := applog.WithOperation(applog.WithComponent("store"), "open")

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: database path is blank", ErrOpen)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: while resolving %q: %w", ErrOpen, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("%w: while creating directory for %q: %w", ErrOpen, abs, err)
	}

	isNew, err := ensureFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	s, err := initialize(ctx, abs, isNew)
	if err != nil {
		if isNew {
			removeDatabaseFiles(abs)
		}
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	s.logger = applog.WithComponent("store")

	logger.Info("store ready", slog.String("path", abs), slog.Bool("new", isNew))
	return s, nil
}

func initialize(ctx context.Context, abs string, isNew bool) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(abs))
	if err != nil {
		return nil, fmt.Errorf("while opening %q: %w", abs, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("while connecting to %q: %w", abs, err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	if isNew {
		if _, err := seedQuestions(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{
		db:      db,
		path:    abs,
		baseDir: filepath.Dir(abs),
		now:     time.Now,
	}, nil
}

// ensureFile creates an empty file at path when none exists and reports whether it did.
func ensureFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("%q is a directory", path)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("while checking %q: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("while creating %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("while creating %q: %w", path, err)
	}
	return true, nil
}

func removeDatabaseFiles(path string) {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		_ = os.Remove(p)
	}
}

// Close releases the connection. It is safe to call more than once; failures are logged.
func (s *Store) Close() {
	if s == nil || s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		s.logger.Warn("closing database failed", slog.String("path", s.path), slog.Any("error", err))
	}
	s.db = nil
}

// Path returns the absolute path of the database file.
func (s *Store) Path() string { return s.path }

// BaseDir returns the directory containing the database file.
func (s *Store) BaseDir() string { return s.baseDir }

// ResolveImagePath turns a stored image path into an absolute one.
// Relative paths are joined to BaseDir. Blank input yields "". The filesystem is not touched.
func (s *Store) ResolveImagePath(stored string) string {
	if strings.TrimSpace(stored) == "" {
		return ""
	}
	if filepath.IsAbs(stored) {
		return filepath.Clean(stored)
	}
	return filepath.Clean(filepath.Join(s.baseDir, stored))
}

// SchemaVersion returns the version of the last applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (uint, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	version, dirty, err := schemaVersion(ctx, s.db)
	if err != nil {
		return 0, readError("reading schema version", err)
	}
	if dirty {
		return version, fmt.Errorf("%w: schema version %d is dirty", ErrRead, version)
	}
	return version, nil
}

// LoadQuestions returns every question ordered by SortOrder, then ID.
func (s *Store) LoadQuestions(ctx context.Context) ([]*domain.Question, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	questions, err := repository.NewQuestionRepository(s.db).List(ctx)
	if err != nil {
		return nil, readError("loading questions", err)
	}
	return questions, nil
}

// LoadImages returns every image ordered by ID.
func (s *Store) LoadImages(ctx context.Context) ([]*domain.Image, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	images, err := repository.NewImageRepository(s.db).List(ctx)
	if err != nil {
		return nil, readError("loading images", err)
	}
	return images, nil
}

// GetImage returns the image with the given ID, or nil when there is none.
func (s *Store) GetImage(ctx context.Context, id int64) (*domain.Image, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	img, err := repository.NewImageRepository(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, readError(fmt.Sprintf("loading image %d", id), err)
	}
	return img, nil
}

// LoadAnswersForImage maps question IDs to the answers recorded for imageID.
// Unanswered questions have no key. An unknown image yields an empty map.
func (s *Store) LoadAnswersForImage(ctx context.Context, imageID int64) (map[int64]domain.AnswerValue, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	answers, err := repository.NewAnswerRepository(s.db).GetForImage(ctx, imageID)
	if err != nil {
		return nil, readError(fmt.Sprintf("loading answers for image %d", imageID), err)
	}
	result := make(map[int64]domain.AnswerValue, len(answers))
	for _, a := range answers {
		result[a.QuestionID] = a.Value
	}
	return result, nil
}

// LoadAllAnswers returns every answer ordered by image, then question.
func (s *Store) LoadAllAnswers(ctx context.Context) ([]*domain.Answer, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	answers, err := repository.NewAnswerRepository(s.db).List(ctx)
	if err != nil {
		return nil, readError("loading answers", err)
	}
	return answers, nil
}

// FindImagesByAnswer returns the images whose answer to questionID equals value.
func (s *Store) FindImagesByAnswer(ctx context.Context, questionID int64, value domain.AnswerValue) ([]*domain.Image, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if !value.Valid() {
		return nil, fmt.Errorf("%w: answer value %d", ErrInvalidArgument, int(value))
	}
	images, err := repository.NewImageRepository(s.db).ListByAnswer(ctx, questionID, value)
	if err != nil {
		return nil, readError(fmt.Sprintf("finding images with question %d = %s", questionID, value), err)
	}
	return images, nil
}

// Stats counts images, questions, fully answered images and answers.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	if s.db == nil {
		return Stats{}, ErrClosed
	}
	var st Stats
	var err error
	images := repository.NewImageRepository(s.db)
	if st.Images, err = images.Count(ctx); err != nil {
		return Stats{}, readError("counting images", err)
	}
	if st.CompletedImages, err = images.CountCompleted(ctx); err != nil {
		return Stats{}, readError("counting completed images", err)
	}
	if st.Questions, err = repository.NewQuestionRepository(s.db).Count(ctx); err != nil {
		return Stats{}, readError("counting questions", err)
	}
	if st.Answers, err = repository.NewAnswerRepository(s.db).Count(ctx); err != nil {
		return Stats{}, readError("counting answers", err)
	}
	return st, nil
}

// SaveAnswers writes every answer of the map for imageID in one transaction,
// replacing earlier answers to the same questions. An empty map does nothing.
func (s *Store) SaveAnswers(ctx context.Context, imageID int64, answers map[int64]domain.AnswerValue) error {
	if s.db == nil {
		return ErrClosed
	}
	if len(answers) == 0 {
		return nil
	}

	questionIDs := make([]int64, 0, len(answers))
	for qid, v := range answers {
		if !v.Valid() {
			return fmt.Errorf("%w: answer value %d for question %d", ErrInvalidArgument, int(v), qid)
		}
		questionIDs = append(questionIDs, qid)
	}
	slices.Sort(questionIDs)

	answeredAt := s.now()
	op := fmt.Sprintf("saving answers for image %d", imageID)
	err := s.withTx(ctx, op, func(tx *sql.Tx) error {
		repo := repository.NewAnswerRepositoryWithTx(tx)
		for _, qid := range questionIDs {
			if err := repo.Save(ctx, imageID, qid, answers[qid], answeredAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("answers saved", slog.Int64("image", imageID), slog.Int("count", len(answers)))
	return nil
}

// UpsertImage registers filePath or, when it is already known, overwrites its
// display name. It returns the image ID in both cases.
func (s *Store) UpsertImage(ctx context.Context, filePath, displayName string) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	if strings.TrimSpace(filePath) == "" {
		return 0, fmt.Errorf("%w: image path is blank", ErrInvalidArgument)
	}

	var id int64
	err := s.withTx(ctx, fmt.Sprintf("upserting image %q", filePath), func(tx *sql.Tx) error {
		var err error
		id, err = repository.NewImageRepositoryWithTx(tx).Upsert(ctx, filePath, displayName)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("image upserted", slog.Int64("id", id), slog.String("path", filePath))
	return id, nil
}

// UpsertQuestion inserts a new question and returns its ID. Questions are never deduplicated.
func (s *Store) UpsertQuestion(ctx context.Context, text string, sortOrder int) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: question text is blank", ErrInvalidArgument)
	}

	var id int64
	err := s.withTx(ctx, "inserting question", func(tx *sql.Tx) error {
		var err error
		id, err = repository.NewQuestionRepositoryWithTx(tx).Create(ctx, text, sortOrder)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("question inserted", slog.Int64("id", id), slog.Int("sort_order", sortOrder))
	return id, nil
}

// DeleteImage removes an image together with its answers. A missing ID is not an error.
func (s *Store) DeleteImage(ctx context.Context, id int64) error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.withTx(ctx, fmt.Sprintf("deleting image %d", id), func(tx *sql.Tx) error {
		return repository.NewImageRepositoryWithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("image deleted", slog.Int64("id", id))
	return nil
}

// DeleteQuestion removes a question together with its answers. A missing ID is not an error.
func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.withTx(ctx, fmt.Sprintf("deleting question %d", id), func(tx *sql.Tx) error {
		return repository.NewQuestionRepositoryWithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Debug("question deleted", slog.Int64("id", id))
	return nil
}

func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return writeError(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return writeError(op, err)
	}
	if err := tx.Commit(); err != nil {
		return writeError(op, err)
	}
	return nil
}
