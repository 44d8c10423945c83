// --- skilltest-server/db/questions.go ---
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skilltest-server/models"
	"skilltest-server/utils"
)

// ErrNotFound is returned when a question id does not resolve.
var ErrNotFound = errors.New("question not found")

// Store provides question bank access over a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const questionColumns = "id, category, question_text, options, correct_option, explanation, difficulty, status, created_at"

func scanQuestion(row pgx.Row) (models.Question, error) {
	var q models.Question
	var explanation *string
	if err := row.Scan(
		&q.ID,
		&q.Category,
		&q.QuestionText,
		&q.Options,
		&q.CorrectOption,
		&explanation,
		&q.Difficulty,
		&q.Status,
		&q.CreatedAt,
	); err != nil {
		return models.Question{}, err
	}
	if explanation != nil {
		q.Explanation = *explanation
	}
	return q, nil
}

func collectQuestions(rows pgx.Rows) ([]models.Question, error) {
	defer rows.Close()
	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading question rows: %w", err)
	}
	return questions, nil
}

// ListCategories aggregates active questions into per-category difficulty
// counts, ordered by category name.
func (s *Store) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	query := `
		SELECT
			category,
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE difficulty = 'easy') AS easy,
			COUNT(*) FILTER (WHERE difficulty = 'medium') AS medium,
			COUNT(*) FILTER (WHERE difficulty = 'hard') AS hard
		FROM questions
		WHERE status = 'active'
		GROUP BY category
		ORDER BY category
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	summaries := []models.CategorySummary{}
	for rows.Next() {
		var cs models.CategorySummary
		if err := rows.Scan(&cs.Name, &cs.Count, &cs.Easy, &cs.Medium, &cs.Hard); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		summaries = append(summaries, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return summaries, nil
}

// FindActiveByCategory returns active questions for an exact-match category,
// optionally restricted to one difficulty.
func (s *Store) FindActiveByCategory(ctx context.Context, category, difficulty string) ([]models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM questions WHERE status = 'active' AND category = $1`, questionColumns)
	args := []any{category}
	if difficulty != "" {
		query += " AND difficulty = $2"
		args = append(args, difficulty)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions for category %q: %w", category, err)
	}
	return collectQuestions(rows)
}

// FindByIDs fetches all referenced questions in one batch lookup. Ids that do
// not resolve are simply absent from the result; callers decide what that means.
func (s *Store) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM questions WHERE id = ANY($1)`, questionColumns)
	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by ids: %w", err)
	}
	return collectQuestions(rows)
}

// ListQuestions returns questions for the admin view, newest first, with
// optional exact-match filters.
func (s *Store) ListQuestions(ctx context.Context, category, difficulty, status string) ([]models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM questions`, questionColumns)
	conditions := []string{}
	args := []any{}
	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if difficulty != "" {
		args = append(args, difficulty)
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	return collectQuestions(rows)
}

// GetQuestion fetches a single question by id.
func (s *Store) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM questions WHERE id = $1`, questionColumns)
	q, err := scanQuestion(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Question{}, ErrNotFound
		}
		return models.Question{}, fmt.Errorf("failed to fetch question %s: %w", id, err)
	}
	return q, nil
}

// CreateQuestion inserts a new question record.
func (s *Store) CreateQuestion(ctx context.Context, q models.Question) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO questions (id, category, question_text, options, correct_option, explanation, difficulty, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, q.ID, q.Category, q.QuestionText, q.Options, q.CorrectOption, utils.StringPtr(q.Explanation), q.Difficulty, q.Status, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// UpdateQuestion replaces the mutable fields of an existing question.
func (s *Store) UpdateQuestion(ctx context.Context, q models.Question) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE questions
		SET category = $2, question_text = $3, options = $4, correct_option = $5,
		    explanation = $6, difficulty = $7, status = $8
		WHERE id = $1
	`, q.ID, q.Category, q.QuestionText, q.Options, q.CorrectOption, utils.StringPtr(q.Explanation), q.Difficulty, q.Status)
	if err != nil {
		return fmt.Errorf("failed to update question %s: %w", q.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteQuestion removes a question by id.
func (s *Store) DeleteQuestion(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ImportQuestions inserts bank entries that are not already present, matching
// on (category, question text). Returns the number of questions inserted.
func (s *Store) ImportQuestions(ctx context.Context, entries []models.BankQuestion) (int, error) {
	inserted := 0
	for _, e := range entries {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO questions (id, category, question_text, options, correct_option, explanation, difficulty, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (category, question_text) DO NOTHING
		`, uuid.NewString(), e.Category, e.QuestionText, e.Options, e.CorrectAnswer, utils.StringPtr(e.Explanation), e.Difficulty, e.Status)
		if err != nil {
			return inserted, fmt.Errorf("failed to import question %q: %w", e.QuestionText, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// CountQuestions reports the total number of question records.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}
