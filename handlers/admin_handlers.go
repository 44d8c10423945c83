// --- skilltest-server/handlers/admin_handlers.go ---
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skilltest-server/db"
	"skilltest-server/models"
)

// AdminQuestionStore is the question bank surface the authoring endpoints need.
// *db.Store satisfies it.
type AdminQuestionStore interface {
	ListQuestions(ctx context.Context, category, difficulty, status string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	CreateQuestion(ctx context.Context, q models.Question) error
	UpdateQuestion(ctx context.Context, q models.Question) error
	DeleteQuestion(ctx context.Context, id string) error
	ImportQuestions(ctx context.Context, entries []models.BankQuestion) (int, error)
}

// AdminListQuestions lists all questions, including inactive ones, with
// optional exact-match filters.
// GET /api/quiz?category=&difficulty=&status=
func AdminListQuestions(store AdminQuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := store.ListQuestions(
			c.Request.Context(),
			c.Query("category"),
			c.Query("difficulty"),
			c.Query("status"),
		)
		if err != nil {
			log.Printf("Error listing questions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve questions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(questions), "data": questions})
	}
}

// AdminGetQuestion fetches a single question with its answer key.
// GET /api/quiz/:id
func AdminGetQuestion(store AdminQuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, err := store.GetQuestion(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
				return
			}
			log.Printf("Error fetching question %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve question"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": question})
	}
}

// AdminCreateQuestion authors a new question.
// POST /api/quiz
func AdminCreateQuestion(store AdminQuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuestionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if *req.CorrectAnswer < 0 || *req.CorrectAnswer >= len(req.Options) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "correctAnswer index is out of range for the given options"})
			return
		}

		question := models.Question{
			ID:            uuid.NewString(),
			Category:      req.Category,
			QuestionText:  req.QuestionText,
			Options:       req.Options,
			CorrectOption: *req.CorrectAnswer,
			Explanation:   req.Explanation,
			Difficulty:    req.Difficulty,
			Status:        req.Status,
			CreatedAt:     time.Now().UTC(),
		}
		if question.Difficulty == "" {
			question.Difficulty = models.DefaultDifficulty
		}
		if question.Status == "" {
			question.Status = models.StatusActive
		}

		if err := store.CreateQuestion(c.Request.Context(), question); err != nil {
			log.Printf("Error creating question: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create question"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": question})
	}
}

// AdminUpdateQuestion applies a partial update to an existing question. The
// correct-index-in-range invariant is re-checked against the patched record.
// PUT /api/quiz/:id
func AdminUpdateQuestion(store AdminQuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		question, err := store.GetQuestion(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
				return
			}
			log.Printf("Error fetching question %s for update: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve question"})
			return
		}

		var req models.QuestionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		if req.Category != nil {
			question.Category = *req.Category
		}
		if req.QuestionText != nil {
			question.QuestionText = *req.QuestionText
		}
		if req.Options != nil {
			question.Options = req.Options
		}
		if req.CorrectAnswer != nil {
			question.CorrectOption = *req.CorrectAnswer
		}
		if req.Explanation != nil {
			question.Explanation = *req.Explanation
		}
		if req.Difficulty != nil {
			question.Difficulty = *req.Difficulty
		}
		if req.Status != nil {
			question.Status = *req.Status
		}

		if question.CorrectOption < 0 || question.CorrectOption >= len(question.Options) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "correctAnswer index is out of range for the given options"})
			return
		}

		if err := store.UpdateQuestion(c.Request.Context(), question); err != nil {
			log.Printf("Error updating question %s: %v", question.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update question"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": question})
	}
}

// AdminDeleteQuestion removes a question from the bank.
// DELETE /api/quiz/:id
func AdminDeleteQuestion(store AdminQuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
				return
			}
			log.Printf("Error deleting question %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete question"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Question deleted"})
	}
}

// AdminImportQuestions re-imports the configured question bank file, skipping
// entries already present.
// POST /api/quiz/import
func AdminImportQuestions(store AdminQuestionStore, bankFile string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := db.LoadBankFile(bankFile)
		if err != nil {
			log.Printf("Error loading question bank file: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load question bank file"})
			return
		}
		inserted, err := store.ImportQuestions(c.Request.Context(), entries)
		if err != nil {
			log.Printf("Error importing questions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to import questions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "inserted": inserted, "total": len(entries)})
	}
}
