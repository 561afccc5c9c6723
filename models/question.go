package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMalformedQuestion is returned when a stored question carries a type tag
// the grader does not know.
var ErrMalformedQuestion = errors.New("malformed question variant")

// DefaultMarks is the value of a question whose marks were never set.
const DefaultMarks = 1

// Question is the stored form of a quiz question. All variant fields live on
// the one row; only those of Type are set. Use NewQuestion to build one and
// Variant to read the typed payload back.
type Question struct {
	ID                 string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	QuizID             string       `json:"-" gorm:"type:varchar(36);not null;index"`
	Position           int          `json:"-" gorm:"not null"`
	Type               QuestionType `json:"questionType" gorm:"column:question_type;type:varchar(16);not null"`
	Text               string       `json:"questionText" gorm:"column:question_text;not null"`
	Options            []string     `json:"options,omitempty" gorm:"type:text;serializer:json"`
	CorrectOptionIndex *int         `json:"correctOptionIndex,omitempty"`
	CorrectBoolean     *bool        `json:"correctBoolean,omitempty"`
	CorrectTextAnswer  *string      `json:"correctTextAnswer,omitempty"`
	Marks              int          `json:"marks" gorm:"not null;default:1"`
	CreatedAt          time.Time    `json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// NewQuestion builds a question row holding exactly the fields of v.
func NewQuestion(text string, marks int, v Variant) Question {
	q := Question{Text: text, Marks: marks}
	if v != nil {
		v.apply(&q)
	}
	return q
}

// EffectiveMarks returns Marks, or DefaultMarks when Marks is unset.
func (q Question) EffectiveMarks() int {
	if q.Marks == 0 {
		return DefaultMarks
	}
	return q.Marks
}

// Variant returns the typed payload of the question.
func (q Question) Variant() (Variant, error) {
	switch q.Type {
	case TypeMultipleChoice:
		v := MultipleChoice{Options: q.Options, CorrectOptionIndex: -1, unkeyed: q.CorrectOptionIndex == nil}
		if q.CorrectOptionIndex != nil {
			v.CorrectOptionIndex = *q.CorrectOptionIndex
		}
		return v, nil
	case TypeTrueFalse:
		v := TrueFalse{unkeyed: q.CorrectBoolean == nil}
		if q.CorrectBoolean != nil {
			v.CorrectAnswer = *q.CorrectBoolean
		}
		return v, nil
	case TypeShortText:
		v := ShortText{}
		if q.CorrectTextAnswer != nil {
			v.ReferenceAnswer = *q.CorrectTextAnswer
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformedQuestion, q.Type)
	}
}

// Validate checks the authoring invariants of the question.
func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is required")
	}
	if q.Marks < 0 {
		return fmt.Errorf("marks must be positive, got %d", q.Marks)
	}
	v, err := q.Variant()
	if err != nil {
		return err
	}
	return v.Validate()
}
