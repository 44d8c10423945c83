package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltest-server/models"
)

func intPtr(n int) *int { return &n }

func scorerQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", Options: []string{"a", "b", "c"}, CorrectOption: 0, Explanation: "first"},
		{ID: "q2", Options: []string{"a", "b", "c"}, CorrectOption: 1, Explanation: "second"},
		{ID: "q3", Options: []string{"a", "b"}, CorrectOption: 1},
	}
}

func TestScoreVerdicts(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: intPtr(0)}, // correct
		{QuestionID: "q2", SelectedAnswer: intPtr(2)}, // wrong option
		{QuestionID: "q3", SelectedAnswer: nil},       // unanswered sentinel
	}

	report := Score(answers, scorerQuestions())

	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Correct)
	assert.False(t, report.Results[1].Correct)
	assert.False(t, report.Results[2].Correct)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Correct)
	assert.Equal(t, 2, report.Wrong)

	// verdicts carry the ground truth and explanation
	require.NotNil(t, report.Results[1].CorrectAnswer)
	assert.Equal(t, 1, *report.Results[1].CorrectAnswer)
	assert.Equal(t, "second", report.Results[1].Explanation)
}

func TestScorePreservesSubmissionOrder(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: "q3", SelectedAnswer: intPtr(1)},
		{QuestionID: "q1", SelectedAnswer: intPtr(0)},
		{QuestionID: "q2", SelectedAnswer: intPtr(1)},
	}

	report := Score(answers, scorerQuestions())

	require.Len(t, report.Results, 3)
	assert.Equal(t, "q3", report.Results[0].QuestionID)
	assert.Equal(t, "q1", report.Results[1].QuestionID)
	assert.Equal(t, "q2", report.Results[2].QuestionID)
}

func TestScoreUnknownQuestionCountsWrong(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: intPtr(0)},
		{QuestionID: "no-such-id", SelectedAnswer: intPtr(0)},
	}

	report := Score(answers, scorerQuestions())

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Correct)

	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Correct)
	assert.False(t, report.Results[1].Correct)
	assert.Nil(t, report.Results[1].CorrectAnswer, "unresolved id must not claim a correct answer")
}

func TestScorePercentageRounding(t *testing.T) {
	questions := scorerQuestions()

	cases := []struct {
		name     string
		answers  []models.SubmittedAnswer
		expected int
	}{
		{
			name: "one of three rounds to 33",
			answers: []models.SubmittedAnswer{
				{QuestionID: "q1", SelectedAnswer: intPtr(0)},
				{QuestionID: "q2", SelectedAnswer: intPtr(0)},
				{QuestionID: "q3", SelectedAnswer: intPtr(0)},
			},
			expected: 33,
		},
		{
			name: "two of three rounds to 67",
			answers: []models.SubmittedAnswer{
				{QuestionID: "q1", SelectedAnswer: intPtr(0)},
				{QuestionID: "q2", SelectedAnswer: intPtr(1)},
				{QuestionID: "q3", SelectedAnswer: intPtr(0)},
			},
			expected: 67,
		},
		{
			name: "zero of one is 0",
			answers: []models.SubmittedAnswer{
				{QuestionID: "q1", SelectedAnswer: intPtr(2)},
			},
			expected: 0,
		},
		{
			name: "one of one is 100",
			answers: []models.SubmittedAnswer{
				{QuestionID: "q1", SelectedAnswer: intPtr(0)},
			},
			expected: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := Score(tc.answers, questions)
			assert.Equal(t, tc.expected, report.Percentage)
		})
	}
}

func TestScoreIsStateless(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: intPtr(0)},
		{QuestionID: "q2", SelectedAnswer: intPtr(2)},
	}
	questions := scorerQuestions()

	first := Score(answers, questions)
	second := Score(answers, questions)
	assert.Equal(t, first, second)
}
