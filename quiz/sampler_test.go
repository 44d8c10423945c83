package quiz

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltest-server/models"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, models.Question{
			ID:            fmt.Sprintf("q%d", i),
			Category:      "Python",
			QuestionText:  fmt.Sprintf("Question %d", i),
			Options:       []string{"a", "b", "c"},
			CorrectOption: i % 3,
			Difficulty:    "easy",
			Status:        "active",
		})
	}
	return questions
}

func TestDrawSizeBound(t *testing.T) {
	questions := makeQuestions(10)

	assert.Len(t, Draw(questions, 4), 4)
	assert.Len(t, Draw(questions, 10), 10)

	// limit beyond the eligible pool returns exactly the pool
	assert.Len(t, Draw(questions, 25), 10)
}

func TestDrawEmptyPool(t *testing.T) {
	drawn := Draw(nil, 10)
	require.NotNil(t, drawn)
	assert.Empty(t, drawn)
}

func TestDrawNonPositiveLimit(t *testing.T) {
	questions := makeQuestions(5)
	assert.Empty(t, Draw(questions, 0))
	assert.Empty(t, Draw(questions, -3))
}

func TestDrawNoDuplicates(t *testing.T) {
	questions := makeQuestions(20)
	for attempt := 0; attempt < 50; attempt++ {
		drawn := Draw(questions, 12)
		seen := make(map[string]bool, len(drawn))
		for _, q := range drawn {
			assert.Falsef(t, seen[q.ID], "question %s drawn twice in one draw", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestDrawDoesNotLeakAnswerKey(t *testing.T) {
	questions := makeQuestions(6)
	for i := range questions {
		questions[i].Explanation = "the explanation"
	}

	drawn := Draw(questions, 6)
	require.Len(t, drawn, 6)

	data, err := json.Marshal(drawn)
	require.NoError(t, err)

	var serialized []map[string]any
	require.NoError(t, json.Unmarshal(data, &serialized))
	for _, entry := range serialized {
		assert.NotContains(t, entry, "correctAnswer")
		assert.NotContains(t, entry, "correctOption")
		assert.NotContains(t, entry, "explanation")
		assert.Contains(t, entry, "questionText")
		assert.Contains(t, entry, "options")
	}
}

func TestDrawDoesNotMutateInput(t *testing.T) {
	questions := makeQuestions(8)
	original := make([]string, len(questions))
	for i, q := range questions {
		original[i] = q.ID
	}

	Draw(questions, 8)

	for i, q := range questions {
		assert.Equal(t, original[i], q.ID)
	}
}

func TestDrawOrderVariesAcrossDraws(t *testing.T) {
	questions := makeQuestions(10)

	// With 10! possible orderings, 30 identical full draws in a row would mean
	// the shuffle is broken.
	first := fmt.Sprint(Draw(questions, 10))
	varied := false
	for i := 0; i < 30; i++ {
		if fmt.Sprint(Draw(questions, 10)) != first {
			varied = true
			break
		}
	}
	assert.True(t, varied, "draw order never varied across 30 draws")
}
