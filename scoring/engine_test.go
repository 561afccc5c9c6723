package scoring

import (
	"testing"

	"quizapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func question(id, text string, marks int, v models.Variant) models.Question {
	q := models.NewQuestion(text, marks, v)
	q.ID = id
	return q
}

func sampleQuiz() models.Quiz {
	return models.Quiz{
		ID:    "quiz-1",
		Title: "General Knowledge",
		Questions: []models.Question{
			question("mcq", "2 + 2 = ?", 1, models.MultipleChoice{Options: []string{"1", "2", "4", "5"}, CorrectOptionIndex: 2}),
			question("tf", "React is a library.", 1, models.TrueFalse{CorrectAnswer: true}),
			question("text", "Capital of India?", 2, models.ShortText{ReferenceAnswer: "New Delhi"}),
		},
	}
}

func correctAnswers() []models.Answer {
	return []models.Answer{
		{QuestionID: "mcq", OptionIndex: intPtr(2)},
		{QuestionID: "tf", Boolean: boolPtr(true)},
		{QuestionID: "text", Text: strPtr("New Delhi")},
	}
}

func TestScoreMixedSubmission(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "mcq", OptionIndex: intPtr(1)},
		{QuestionID: "tf", Boolean: boolPtr(true)},
		{QuestionID: "text", Text: strPtr("new delhi is capital")},
	}

	report, err := Score(sampleQuiz(), answers)
	require.NoError(t, err)

	assert.Equal(t, "quiz-1", report.QuizID)
	assert.Equal(t, "General Knowledge", report.Title)
	assert.Equal(t, 3, report.Score)
	assert.Equal(t, 4, report.MaxScore)
	assert.Equal(t, 2, report.CorrectCount)
	assert.Equal(t, 3, report.TotalQuestions)

	assert.Equal(t, []models.ScoreDetail{
		{QuestionID: "mcq", QuestionText: "2 + 2 = ?", QuestionType: models.TypeMultipleChoice, Marks: 1, IsCorrect: false},
		{QuestionID: "tf", QuestionText: "React is a library.", QuestionType: models.TypeTrueFalse, Marks: 1, IsCorrect: true},
		{QuestionID: "text", QuestionText: "Capital of India?", QuestionType: models.TypeShortText, Marks: 2, IsCorrect: true},
	}, report.Details)
}

func TestScoreNoAnswers(t *testing.T) {
	for _, answers := range [][]models.Answer{nil, {}} {
		report, err := Score(sampleQuiz(), answers)
		require.NoError(t, err)

		assert.Equal(t, 0, report.Score)
		assert.Equal(t, 0, report.CorrectCount)
		assert.Equal(t, 4, report.MaxScore)
		require.Len(t, report.Details, 3)
		for _, d := range report.Details {
			assert.False(t, d.IsCorrect)
		}
	}
}

func TestScoreFullyCorrect(t *testing.T) {
	report, err := Score(sampleQuiz(), correctAnswers())
	require.NoError(t, err)

	assert.Equal(t, report.MaxScore, report.Score)
	assert.Equal(t, report.TotalQuestions, report.CorrectCount)
}

func TestScoreDeterministic(t *testing.T) {
	quiz := sampleQuiz()
	answers := correctAnswers()

	first, err := Score(quiz, answers)
	require.NoError(t, err)
	second, err := Score(quiz, answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleQuiz(), quiz, "quiz must not be mutated")
	assert.Equal(t, correctAnswers(), answers, "answers must not be mutated")
}

func TestScoreDefaultMarks(t *testing.T) {
	quiz := models.Quiz{ID: "q", Title: "t", Questions: []models.Question{
		question("a", "unset marks", 0, models.TrueFalse{CorrectAnswer: false}),
	}}

	report, err := Score(quiz, []models.Answer{{QuestionID: "a", Boolean: boolPtr(false)}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.MaxScore)
	assert.Equal(t, 1, report.Score)
	assert.Equal(t, 1, report.Details[0].Marks)
}

func TestScoreAnswerEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		answers []models.Answer
		want    []bool
	}{
		{
			name:    "unknown question ids are ignored",
			answers: append(correctAnswers(), models.Answer{QuestionID: "nope", OptionIndex: intPtr(0)}),
			want:    []bool{true, true, true},
		},
		{
			name: "first duplicate wins",
			answers: []models.Answer{
				{QuestionID: "mcq", OptionIndex: intPtr(0)},
				{QuestionID: "mcq", OptionIndex: intPtr(2)},
			},
			want: []bool{false, false, false},
		},
		{
			name: "payload of the wrong variant is incorrect",
			answers: []models.Answer{
				{QuestionID: "mcq", Boolean: boolPtr(true)},
				{QuestionID: "tf", OptionIndex: intPtr(1)},
				{QuestionID: "text", Boolean: boolPtr(true)},
			},
			want: []bool{false, false, false},
		},
		{
			name: "false is a valid wrong answer",
			answers: []models.Answer{
				{QuestionID: "tf", Boolean: boolPtr(false)},
			},
			want: []bool{false, false, false},
		},
		{
			name: "partial text overlap below threshold",
			answers: []models.Answer{
				{QuestionID: "text", Text: strPtr("delhi")},
			},
			want: []bool{false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Score(sampleQuiz(), tt.answers)
			require.NoError(t, err)

			got := make([]bool, 0, len(report.Details))
			for _, d := range report.Details {
				got = append(got, d.IsCorrect)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreStopwordOnlyReference(t *testing.T) {
	quiz := models.Quiz{ID: "q", Title: "t", Questions: []models.Question{
		question("a", "Say it", 1, models.ShortText{ReferenceAnswer: "the is of"}),
	}}

	for _, given := range []string{"the is of", "anything at all", ""} {
		report, err := Score(quiz, []models.Answer{{QuestionID: "a", Text: strPtr(given)}})
		require.NoError(t, err)
		assert.False(t, report.Details[0].IsCorrect, "candidate %q", given)
	}
}

func TestScoreMissingReferenceIsIncorrect(t *testing.T) {
	quiz := models.Quiz{ID: "q", Title: "t", Questions: []models.Question{
		{ID: "a", Type: models.TypeShortText, Text: "no key", Marks: 1},
		{ID: "b", Type: models.TypeTrueFalse, Text: "no key", Marks: 1},
		{ID: "c", Type: models.TypeMultipleChoice, Text: "no key", Options: []string{"x", "y"}, Marks: 1},
	}}
	answers := []models.Answer{
		{QuestionID: "a", Text: strPtr("whatever")},
		{QuestionID: "b", Boolean: boolPtr(false)},
		{QuestionID: "c", OptionIndex: intPtr(-1)},
	}

	report, err := Score(quiz, answers)
	require.NoError(t, err)
	assert.Equal(t, 0, report.CorrectCount)
	assert.Equal(t, 3, report.MaxScore)
}

func TestScoreMalformedVariant(t *testing.T) {
	quiz := sampleQuiz()
	quiz.Questions = append(quiz.Questions, models.Question{ID: "bad", Type: "essay", Text: "Explain."})

	report, err := Score(quiz, correctAnswers())
	require.ErrorIs(t, err, models.ErrMalformedQuestion)
	assert.Contains(t, err.Error(), "bad")
	assert.Equal(t, models.ScoreReport{}, report)
}

func TestScoreOptions(t *testing.T) {
	answers := []models.Answer{{QuestionID: "text", Text: strPtr("delhi")}}

	report, err := Score(sampleQuiz(), answers, WithMinMatchRatio(0.5))
	require.NoError(t, err)
	assert.True(t, report.Details[2].IsCorrect)

	report, err = Score(sampleQuiz(), answers, WithStopwords("new"))
	require.NoError(t, err)
	assert.True(t, report.Details[2].IsCorrect)

	report, err = Score(sampleQuiz(), answers, WithMinMatchRatio(0))
	require.NoError(t, err)
	assert.False(t, report.Details[2].IsCorrect, "non-positive ratio keeps the default")
}
