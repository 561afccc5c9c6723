package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"quizapp/models"
	"quizapp/services"

	"github.com/gin-gonic/gin"
)

// SubmissionPublisher is notified after every graded submission.
type SubmissionPublisher interface {
	PublishSubmission(report *models.ScoreReport)
}

type QuizHandler struct {
	quizService *services.QuizService
	publisher   SubmissionPublisher
}

func NewQuizHandler(quizService *services.QuizService, publisher SubmissionPublisher) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		publisher:   publisher,
	}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching quizzes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching quizzes"})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
			return
		}
		log.Printf("Error fetching quiz %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching quiz"})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	// Decoded without gin's validator: the service applies the binding tags
	// together with the per-question rules and reports them in one message.
	var req services.CreateQuizRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessage(err)})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), &req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
			return
		}
		log.Printf("Error creating quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while creating quiz"})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

type submitRequest struct {
	Answers json.RawMessage `json:"answers"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	answers, err := parseAnswers(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	report, err := h.quizService.SubmitAnswers(c.Request.Context(), c.Param("id"), answers)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
			return
		}
		log.Printf("Error submitting quiz %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while submitting quiz"})
		return
	}

	if h.publisher != nil {
		h.publisher.PublishSubmission(report)
	}

	c.JSON(http.StatusOK, report)
}

var errAnswersRequired = errors.New("answers array is required")

// parseAnswers reads the answers array of a submission. The field must be
// present and be a JSON array; its elements are decoded leniently, so a
// mistyped answer grades as incorrect instead of failing the submission.
func parseAnswers(c *gin.Context) ([]models.Answer, error) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errAnswersRequired
	}

	raw := bytes.TrimSpace(req.Answers)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errAnswersRequired
	}

	var answers []models.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, errors.New("invalid answers: " + err.Error())
	}
	return answers, nil
}

// bindingMessage describes a request body that could not be decoded.
func bindingMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "Title and at least one question are required"
	case errors.As(err, &syntaxErr):
		return "Malformed JSON body"
	case errors.As(err, &typeErr):
		return "Invalid value for field " + typeErr.Field
	default:
		return "Invalid request body: " + err.Error()
	}
}
