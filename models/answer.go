package models

import (
	"bytes"
	"encoding/json"
)

// Answer is a taker's response to one question. At most one payload field is
// expected to be set, matching the variant of the referenced question; a nil
// payload is graded as incorrect.
type Answer struct {
	QuestionID  string  `json:"questionId"`
	OptionIndex *int    `json:"answerOptionIndex,omitempty"`
	Boolean     *bool   `json:"answerBoolean,omitempty"`
	Text        *string `json:"answerText,omitempty"`
}

// UnmarshalJSON decodes an answer leniently. A payload of the wrong JSON type
// is left nil so it grades as incorrect, a numeric questionId is taken by its
// literal text, and an element that is not an object decodes to an answer
// that references no question.
func (a *Answer) UnmarshalJSON(data []byte) error {
	*a = Answer{}

	var raw struct {
		QuestionID  json.RawMessage `json:"questionId"`
		OptionIndex json.RawMessage `json:"answerOptionIndex"`
		Boolean     json.RawMessage `json:"answerBoolean"`
		Text        json.RawMessage `json:"answerText"`
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	a.QuestionID = questionIDFrom(raw.QuestionID)
	a.OptionIndex = lenient[int](raw.OptionIndex)
	a.Boolean = lenient[bool](raw.Boolean)
	a.Text = lenient[string](raw.Text)
	return nil
}

func questionIDFrom(raw json.RawMessage) string {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// lenient decodes raw into a *T, returning nil when raw is absent, null or of
// another JSON type.
func lenient[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// ScoreReport is the graded breakdown of one submission.
type ScoreReport struct {
	QuizID         string        `json:"quizId"`
	Title          string        `json:"title"`
	Score          int           `json:"score"`
	MaxScore       int           `json:"maxScore"`
	CorrectCount   int           `json:"correctCount"`
	TotalQuestions int           `json:"totalQuestions"`
	Details        []ScoreDetail `json:"details"`
}

type ScoreDetail struct {
	QuestionID   string       `json:"questionId"`
	QuestionText string       `json:"questionText"`
	QuestionType QuestionType `json:"questionType"`
	Marks        int          `json:"marks"`
	IsCorrect    bool         `json:"isCorrect"`
}
