// --- skilltest-server/handlers/quiz_handlers.go ---
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skilltest-server/models"
	"skilltest-server/quiz"
	"skilltest-server/utils"
)

// QuestionStore is the question bank surface the public quiz endpoints need.
// *db.Store satisfies it.
type QuestionStore interface {
	ListCategories(ctx context.Context) ([]models.CategorySummary, error)
	FindActiveByCategory(ctx context.Context, category, difficulty string) ([]models.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Question, error)
}

// HealthCheck reports service liveness.
// GET /api/health
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "SkillTest API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// GetCategories lists quiz topics with active-question counts per difficulty.
// GET /api/quiz/categories
func GetCategories(store QuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.ListCategories(c.Request.Context())
		if err != nil {
			log.Printf("Error querying categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
	}
}

// GetTestQuestions draws a randomized, answer-free question set for a category.
// An empty draw is a success; the client shows "no questions available".
// GET /api/quiz/test/:category?limit=N&difficulty=D
func GetTestQuestions(store QuestionStore, defaultLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		difficulty := c.Query("difficulty")
		if difficulty != "" && !utils.ContainsString(models.Difficulties, difficulty) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "difficulty must be one of easy, medium, hard"})
			return
		}

		eligible, err := store.FindActiveByCategory(c.Request.Context(), category, difficulty)
		if err != nil {
			log.Printf("Error querying questions for category %q: %v", category, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve questions"})
			return
		}

		drawn := quiz.Draw(eligible, limit)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(drawn),
			"data":    drawn,
		})
	}
}

// SubmitQuiz scores a batch of answers against the question bank. Nothing is
// persisted; resubmitting the same batch scores identically.
// POST /api/quiz/submit
func SubmitQuiz(store QuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Answers) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide answers"})
			return
		}

		ids := make([]string, 0, len(req.Answers))
		for _, a := range req.Answers {
			ids = append(ids, a.QuestionID)
		}

		questions, err := store.FindByIDs(c.Request.Context(), ids)
		if err != nil {
			log.Printf("Error resolving submitted questions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to score answers"})
			return
		}

		report := quiz.Score(req.Answers, questions)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
	}
}
