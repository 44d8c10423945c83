package quiz

import (
	"math/rand"

	"skilltest-server/models"
)

// Draw selects a uniformly random subset of min(limit, len(eligible)) questions
// with no repeats, projected down to their answer-key-free form. The returned
// order is itself randomized per draw.
//
// The global rand source is used deliberately: it is seeded unpredictably at
// process start, so a draw cannot be reproduced from anything in the request.
func Draw(eligible []models.Question, limit int) []models.PublicQuestion {
	if limit < 0 {
		limit = 0
	}
	shuffled := make([]models.Question, len(eligible))
	copy(shuffled, eligible)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	drawn := make([]models.PublicQuestion, 0, limit)
	for _, q := range shuffled[:limit] {
		drawn = append(drawn, q.Public())
	}
	return drawn
}
