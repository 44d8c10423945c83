package models

import (
	"time"
)

// Difficulty and status values accepted for questions.
var (
	Difficulties = []string{"easy", "medium", "hard"}
	Statuses     = []string{"active", "inactive"}
)

const (
	DefaultDifficulty = "medium"
	StatusActive      = "active"
	StatusInactive    = "inactive"
)

// Question is a question bank record. CorrectOption is the zero-based index
// into Options and must never reach a test-taker before submission.
type Question struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	QuestionText  string    `json:"questionText"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation,omitempty"`
	Difficulty    string    `json:"difficulty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicQuestion is the answer-key-free projection served to test-takers.
type PublicQuestion struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// Public strips the correct option index and explanation from a question.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Options:      q.Options,
		Difficulty:   q.Difficulty,
		Category:     q.Category,
	}
}

// CategorySummary is one row of the category index: an active-question topic
// with per-difficulty counts.
type CategorySummary struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Easy   int    `json:"easy"`
	Medium int    `json:"medium"`
	Hard   int    `json:"hard"`
}

// SubmitRequest is the scoring payload: the full answer batch for one attempt.
type SubmitRequest struct {
	Answers []SubmittedAnswer `json:"answers"`
}

// SubmittedAnswer pairs a question id with the chosen option index.
// A nil SelectedAnswer is the unanswered sentinel and always scores wrong;
// a pointer is required because index 0 is a valid choice.
type SubmittedAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer *int   `json:"selectedAnswer"`
}

// AnswerResult is the per-question verdict. CorrectAnswer is omitted when the
// submitted question id did not resolve against the bank.
type AnswerResult struct {
	QuestionID     string `json:"questionId"`
	Correct        bool   `json:"correct"`
	CorrectAnswer  *int   `json:"correctAnswer,omitempty"`
	SelectedAnswer *int   `json:"selectedAnswer"`
	Explanation    string `json:"explanation,omitempty"`
}

// Report aggregates the verdicts for one submission.
type Report struct {
	Total      int            `json:"total"`
	Correct    int            `json:"correct"`
	Wrong      int            `json:"wrong"`
	Percentage int            `json:"percentage"`
	Results    []AnswerResult `json:"results"`
}

// QuestionCreateRequest is the admin payload for authoring a question.
type QuestionCreateRequest struct {
	Category      string   `json:"category" binding:"required"`
	QuestionText  string   `json:"questionText" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,max=6"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Status        string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

// QuestionUpdateRequest is a partial update; nil fields are left untouched.
type QuestionUpdateRequest struct {
	Category      *string  `json:"category"`
	QuestionText  *string  `json:"questionText"`
	Options       []string `json:"options" binding:"omitempty,min=2,max=6"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
	Difficulty    *string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Status        *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// BankFile is the YAML question bank used for seeding and imports.
type BankFile struct {
	Questions []BankQuestion `yaml:"questions"`
}

// BankQuestion is one entry of the YAML question bank.
type BankQuestion struct {
	Category      string   `yaml:"category"`
	QuestionText  string   `yaml:"questionText"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correctAnswer"`
	Explanation   string   `yaml:"explanation"`
	Difficulty    string   `yaml:"difficulty"`
	Status        string   `yaml:"status"`
}
