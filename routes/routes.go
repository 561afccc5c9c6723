package routes

import (
	"net/http"

	"quizapp/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	resultsHandler *handlers.ResultsHandler,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is running"})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.POST("/:id/submit", quizHandler.SubmitQuiz)
		}
	}

	// Live feed of scored submissions for one quiz
	router.GET("/ws/quizzes/:id/results", resultsHandler.Subscribe)
}
