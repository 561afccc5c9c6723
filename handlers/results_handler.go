package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizapp/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ResultsHandler struct {
	quizService *services.QuizService
	hub         *services.ResultsHub
}

func NewResultsHandler(quizService *services.QuizService, hub *services.ResultsHub) *ResultsHandler {
	return &ResultsHandler{
		quizService: quizService,
		hub:         hub,
	}
}

// Subscribe upgrades the request to a websocket that receives a
// "submission_scored" message for every graded submission of the quiz.
func (h *ResultsHandler) Subscribe(c *gin.Context) {
	quizID := c.Param("id")

	if _, err := h.quizService.GetQuiz(c.Request.Context(), quizID); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Quiz not found"})
			return
		}
		log.Printf("Error fetching quiz %s for results feed: %v", quizID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching quiz"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		log.Printf("WebSocket upgrade failed for quiz %s: %v", quizID, err)
		return
	}

	h.hub.RegisterClient(conn, quizID)
}
