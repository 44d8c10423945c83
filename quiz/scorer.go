package quiz

import (
	"math"

	"skilltest-server/models"
)

// Score resolves a batch of submitted answers against the given question
// snapshot and produces per-question verdicts plus the aggregate block.
//
// It is a pure function: verdicts come out in submission order, an answer is
// correct iff its selected index equals the resolved question's correct index,
// and an id that resolves to no question counts as wrong without failing the
// batch. Callers guarantee a non-empty answer list.
func Score(answers []models.SubmittedAnswer, questions []models.Question) models.Report {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	correct := 0
	results := make([]models.AnswerResult, 0, len(answers))
	for _, answer := range answers {
		result := models.AnswerResult{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
		}

		if q, ok := byID[answer.QuestionID]; ok {
			correctOption := q.CorrectOption
			result.CorrectAnswer = &correctOption
			result.Explanation = q.Explanation
			// nil SelectedAnswer is the unanswered sentinel, always wrong
			result.Correct = answer.SelectedAnswer != nil && *answer.SelectedAnswer == q.CorrectOption
		}

		if result.Correct {
			correct++
		}
		results = append(results, result)
	}

	total := len(answers)
	return models.Report{
		Total:      total,
		Correct:    correct,
		Wrong:      total - correct,
		Percentage: int(math.Round(float64(correct) / float64(total) * 100)),
		Results:    results,
	}
}
