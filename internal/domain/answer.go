package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AnswerValue is the three-valued answer to a checklist question.
type AnswerValue int

const (
	AnswerNo      AnswerValue = 0
	AnswerYes     AnswerValue = 1
	AnswerUnknown AnswerValue = 2
)

// AnswerValues lists every valid value in storage order.
var AnswerValues = []AnswerValue{AnswerNo, AnswerYes, AnswerUnknown}

// Valid reports whether v is one of the stored values.
func (v AnswerValue) Valid() bool {
	return v == AnswerNo || v == AnswerYes || v == AnswerUnknown
}

func (v AnswerValue) String() string {
	switch v {
	case AnswerNo:
		return "no"
	case AnswerYes:
		return "yes"
	case AnswerUnknown:
		return "unknown"
	default:
		return "AnswerValue(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseAnswerValue accepts the names, their first letters, "?" and the stored numbers.
func ParseAnswerValue(s string) (AnswerValue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no", "n", "0", "false":
		return AnswerNo, nil
	case "yes", "y", "1", "true":
		return AnswerYes, nil
	case "unknown", "u", "?", "2":
		return AnswerUnknown, nil
	}
	return 0, fmt.Errorf("invalid answer %q: expected yes, no or unknown", s)
}

// Answer is the stored answer of one question for one image.
type Answer struct {
	ImageID    int64
	QuestionID int64
	Value      AnswerValue
	AnsweredAt time.Time
}

// AnswerRepository defines the interface for answer storage operations
type AnswerRepository interface {
	// Save inserts or replaces the answer for an (image, question) pair
	Save(ctx context.Context, imageID, questionID int64, value AnswerValue, answeredAt time.Time) error

	// GetForImage retrieves all answers for a specific image
	GetForImage(ctx context.Context, imageID int64) ([]*Answer, error)

	// List retrieves every answer ordered by image, then question
	List(ctx context.Context) ([]*Answer, error)

	// Count returns the total number of answers
	Count(ctx context.Context) (int64, error)
}
