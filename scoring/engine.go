// Package scoring grades a submission against a quiz.
package scoring

import (
	"fmt"

	"quizapp/models"
	"quizapp/textmatch"
)

// Option tunes a single Score call.
type Option func(*config)

type config struct {
	policy textmatch.Policy
}

// WithMinMatchRatio sets the word coverage a text answer needs to be
// correct. A non-positive ratio keeps textmatch.DefaultMinRatio.
func WithMinMatchRatio(r float64) Option {
	return func(c *config) { c.policy.MinRatio = r }
}

// WithStopwords replaces the stopword set used for text answers.
func WithStopwords(words ...string) Option {
	return func(c *config) { c.policy.Stopwords = textmatch.NewStopwords(words...) }
}

// Score grades answers against quiz and returns the report in question
// order. Answers for unknown questions are ignored and unanswered questions
// are incorrect. When several answers reference the same question the first
// one wins.
//
// Score fails without a report if any question has an unknown variant.
func Score(quiz models.Quiz, answers []models.Answer, opts ...Option) (models.ScoreReport, error) {
	cfg := &config{policy: textmatch.Policy{MinRatio: textmatch.DefaultMinRatio}}
	for _, o := range opts {
		o(cfg)
	}

	variants := make([]models.Variant, len(quiz.Questions))
	for i, q := range quiz.Questions {
		v, err := q.Variant()
		if err != nil {
			return models.ScoreReport{}, fmt.Errorf("question %s: %w", q.ID, err)
		}
		variants[i] = v
	}

	report := models.ScoreReport{
		QuizID:         quiz.ID,
		Title:          quiz.Title,
		TotalQuestions: len(quiz.Questions),
		Details:        make([]models.ScoreDetail, 0, len(quiz.Questions)),
	}

	for i, q := range quiz.Questions {
		marks := q.EffectiveMarks()
		report.MaxScore += marks

		correct := false
		if a, ok := findAnswer(answers, q.ID); ok {
			correct = grade(variants[i], a, cfg.policy)
		}
		if correct {
			report.Score += marks
			report.CorrectCount++
		}

		report.Details = append(report.Details, models.ScoreDetail{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			QuestionType: q.Type,
			Marks:        marks,
			IsCorrect:    correct,
		})
	}

	return report, nil
}

func findAnswer(answers []models.Answer, questionID string) (models.Answer, bool) {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return models.Answer{}, false
}
