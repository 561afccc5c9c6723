package services

import (
	"testing"

	"quizapp/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Quiz{}, &models.Question{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func sampleRequest() *CreateQuizRequest {
	return &CreateQuizRequest{
		Title:       "JS Basics",
		Description: "Simple quiz",
		Questions: []CreateQuestionRequest{
			{QuestionType: models.TypeMultipleChoice, QuestionText: "2 + 2 = ?", Options: []string{"1", "2", "4", "5"}, CorrectOptionIndex: intPtr(2), Marks: 1},
			{QuestionType: models.TypeTrueFalse, QuestionText: "React is a library.", CorrectBoolean: boolPtr(true), Marks: 1},
			{QuestionType: models.TypeShortText, QuestionText: "Capital of India?", CorrectTextAnswer: strPtr("New Delhi"), Marks: 2},
		},
	}
}
