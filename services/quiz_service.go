package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"quizapp/models"
	"quizapp/scoring"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService struct {
	db       *gorm.DB
	cache    *QuizCache
	validate *validator.Validate
	scoring  []scoring.Option
}

// NewQuizService returns a service over db. cache may be nil. opts are
// applied to every grading call.
func NewQuizService(db *gorm.DB, cache *QuizCache, opts ...scoring.Option) *QuizService {
	return &QuizService{
		db:       db,
		cache:    cache,
		validate: NewRequestValidator(),
		scoring:  opts,
	}
}

// CreateQuiz stores a quiz and its questions in one transaction.
func (s *QuizService) CreateQuiz(ctx context.Context, req *CreateQuizRequest) (*models.Quiz, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: validationMessage(err)}
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for i, qReq := range req.Questions {
		q := qReq.question()
		if err := q.Validate(); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("questions[%d]: %v", i, err)}
		}
		questions = append(questions, q)
	}

	// Start transaction
	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	for i := range questions {
		questions[i].QuizID = quiz.ID
		questions[i].Position = i
		if err := tx.Create(&questions[i]).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("create question %d: %w", i, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit quiz: %w", err)
	}

	quiz.Questions = questions
	if err := s.cache.Set(ctx, &quiz); err != nil {
		log.Printf("Failed to cache quiz %s: %v", quiz.ID, err)
	}

	log.Printf("Created quiz %s with %d questions", quiz.ID, len(questions))
	return &quiz, nil
}

// ListQuizzes returns every quiz without its questions, newest first.
func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.QuizSummary, error) {
	var quizzes []models.QuizSummary
	err := s.db.WithContext(ctx).
		Model(&models.Quiz{}).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []models.QuizSummary{}
	}
	return quizzes, nil
}

// GetQuiz returns a quiz with its questions in authoring order, answer keys
// included.
func (s *QuizService) GetQuiz(ctx context.Context, quizID string) (*models.Quiz, error) {
	if quiz, ok := s.cache.Get(ctx, quizID); ok {
		return quiz, nil
	}

	var quiz models.Quiz
	err := s.db.WithContext(ctx).
		Where("id = ?", quizID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position")
		}).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, &quiz); err != nil {
		log.Printf("Failed to cache quiz %s: %v", quiz.ID, err)
	}
	return &quiz, nil
}

// SubmitAnswers grades answers against the stored quiz.
func (s *QuizService) SubmitAnswers(ctx context.Context, quizID string, answers []models.Answer) (*models.ScoreReport, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	report, err := scoring.Score(*quiz, answers, s.scoring...)
	if err != nil {
		return nil, fmt.Errorf("score quiz %s: %w", quizID, err)
	}
	return &report, nil
}
