package models

import "fmt"

// QuestionType is the wire tag of a question variant.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "mcq"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortText      QuestionType = "text"
)

// Valid reports whether t is one of the known tags.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortText:
		return true
	}
	return false
}

// Variant is the typed payload of a question. It is implemented only by
// MultipleChoice, TrueFalse and ShortText.
type Variant interface {
	Type() QuestionType
	Validate() error
	apply(q *Question)
}

// MultipleChoice is graded by comparing the chosen option index.
type MultipleChoice struct {
	Options            []string
	CorrectOptionIndex int

	// set when the stored row has no answer key; no submission matches
	unkeyed bool
}

func (MultipleChoice) Type() QuestionType { return TypeMultipleChoice }

// HasAnswerKey is false for stored questions that lost their correct index.
func (m MultipleChoice) HasAnswerKey() bool { return !m.unkeyed }

func (m MultipleChoice) Validate() error {
	if len(m.Options) < 2 {
		return fmt.Errorf("multiple choice question needs at least 2 options, got %d", len(m.Options))
	}
	if m.unkeyed {
		return fmt.Errorf("multiple choice question needs a correct option index")
	}
	if m.CorrectOptionIndex < 0 || m.CorrectOptionIndex >= len(m.Options) {
		return fmt.Errorf("correct option index %d out of range [0,%d)", m.CorrectOptionIndex, len(m.Options))
	}
	return nil
}

func (m MultipleChoice) apply(q *Question) {
	q.Type = TypeMultipleChoice
	q.Options = append([]string(nil), m.Options...)
	idx := m.CorrectOptionIndex
	q.CorrectOptionIndex = &idx
}

// TrueFalse is graded by comparing the submitted boolean.
type TrueFalse struct {
	CorrectAnswer bool

	unkeyed bool
}

func (TrueFalse) Type() QuestionType { return TypeTrueFalse }

// HasAnswerKey is false for stored questions without a correct boolean.
func (t TrueFalse) HasAnswerKey() bool { return !t.unkeyed }

func (t TrueFalse) Validate() error {
	if t.unkeyed {
		return fmt.Errorf("true/false question needs a correct answer")
	}
	return nil
}

func (t TrueFalse) apply(q *Question) {
	q.Type = TypeTrueFalse
	b := t.CorrectAnswer
	q.CorrectBoolean = &b
}

// ShortText is graded with a shallow word-overlap match against
// ReferenceAnswer.
type ShortText struct {
	ReferenceAnswer string
}

func (ShortText) Type() QuestionType { return TypeShortText }

func (s ShortText) Validate() error {
	if s.ReferenceAnswer == "" {
		return fmt.Errorf("text question needs a reference answer")
	}
	return nil
}

func (s ShortText) apply(q *Question) {
	q.Type = TypeShortText
	ref := s.ReferenceAnswer
	q.CorrectTextAnswer = &ref
}
