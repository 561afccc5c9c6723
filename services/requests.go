package services

import (
	"fmt"
	"reflect"
	"strings"

	"quizapp/models"

	"github.com/go-playground/validator/v10"
)

type CreateQuizRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuestionRequest is one question of an authoring request. Which of the
// answer key fields is required depends on QuestionType.
type CreateQuestionRequest struct {
	QuestionType       models.QuestionType `json:"questionType" binding:"required,oneof=mcq true_false text"`
	QuestionText       string              `json:"questionText" binding:"required"`
	Options            []string            `json:"options"`
	CorrectOptionIndex *int                `json:"correctOptionIndex"`
	CorrectBoolean     *bool               `json:"correctBoolean"`
	CorrectTextAnswer  *string             `json:"correctTextAnswer"`
	Marks              int                 `json:"marks" binding:"min=0"`
}

// variant converts the request into the typed payload of the question.
func (r CreateQuestionRequest) variant() models.Variant {
	switch r.QuestionType {
	case models.TypeMultipleChoice:
		idx := -1
		if r.CorrectOptionIndex != nil {
			idx = *r.CorrectOptionIndex
		}
		return models.MultipleChoice{Options: r.Options, CorrectOptionIndex: idx}
	case models.TypeTrueFalse:
		return models.TrueFalse{CorrectAnswer: r.CorrectBoolean != nil && *r.CorrectBoolean}
	case models.TypeShortText:
		ref := ""
		if r.CorrectTextAnswer != nil {
			ref = *r.CorrectTextAnswer
		}
		return models.ShortText{ReferenceAnswer: ref}
	}
	return nil
}

// question builds the row stored for the request.
func (r CreateQuestionRequest) question() models.Question {
	marks := r.Marks
	if marks == 0 {
		marks = models.DefaultMarks
	}
	return models.NewQuestion(r.QuestionText, marks, r.variant())
}

// ValidationError reports an authoring or submission payload the service
// refuses before touching storage or the grader.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewRequestValidator returns a validator reading the same `binding` tags as
// gin, extended with the per-variant rules of CreateQuestionRequest.
func NewRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateQuestionRequest, CreateQuestionRequest{})
	return v
}

func validateQuestionRequest(sl validator.StructLevel) {
	r := sl.Current().Interface().(CreateQuestionRequest)

	switch r.QuestionType {
	case models.TypeMultipleChoice:
		if len(r.Options) < 2 {
			sl.ReportError(r.Options, "options", "Options", "mcq_options", "2")
		}
		if r.CorrectOptionIndex == nil {
			sl.ReportError(r.CorrectOptionIndex, "correctOptionIndex", "CorrectOptionIndex", "required_for", "mcq")
		} else if *r.CorrectOptionIndex < 0 || *r.CorrectOptionIndex >= len(r.Options) {
			sl.ReportError(r.CorrectOptionIndex, "correctOptionIndex", "CorrectOptionIndex", "option_index", fmt.Sprint(len(r.Options)))
		}
	case models.TypeTrueFalse:
		if r.CorrectBoolean == nil {
			sl.ReportError(r.CorrectBoolean, "correctBoolean", "CorrectBoolean", "required_for", "true_false")
		}
	case models.TypeShortText:
		if r.CorrectTextAnswer == nil || strings.TrimSpace(*r.CorrectTextAnswer) == "" {
			sl.ReportError(r.CorrectTextAnswer, "correctTextAnswer", "CorrectTextAnswer", "required_for", "text")
		}
	}
}

// validationMessage turns validator output into a message for API clients.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			if fe.Kind() == reflect.Slice {
				msgs = append(msgs, fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			}
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "mcq_options":
			msgs = append(msgs, fmt.Sprintf("%s must contain at least %s options", field, fe.Param()))
		case "required_for":
			msgs = append(msgs, fmt.Sprintf("%s is required for %s questions", field, fe.Param()))
		case "option_index":
			msgs = append(msgs, fmt.Sprintf("%s must be between 0 and %s (exclusive)", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
