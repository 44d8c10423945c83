// --- skilltest-server/db/seed.go ---
package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"skilltest-server/models"
	"skilltest-server/utils"
)

// LoadBankFile reads and validates a YAML question bank file. Entries get
// default difficulty/status applied; any invalid entry fails the whole load so
// a broken bank file never half-imports.
func LoadBankFile(path string) ([]models.BankQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank file %s: %w", path, err)
	}

	var bank models.BankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank file %s: %w", path, err)
	}

	for i := range bank.Questions {
		e := &bank.Questions[i]
		if e.Category == "" {
			return nil, fmt.Errorf("question %d in %s: category is required", i+1, path)
		}
		if e.QuestionText == "" {
			return nil, fmt.Errorf("question %d in %s: questionText is required", i+1, path)
		}
		if len(e.Options) < 2 || len(e.Options) > 6 {
			return nil, fmt.Errorf("question %d in %s: expected 2-6 options, got %d", i+1, path, len(e.Options))
		}
		if e.CorrectAnswer < 0 || e.CorrectAnswer >= len(e.Options) {
			return nil, fmt.Errorf("question %d in %s: correctAnswer %d out of range for %d options", i+1, path, e.CorrectAnswer, len(e.Options))
		}
		if e.Difficulty == "" {
			e.Difficulty = models.DefaultDifficulty
		} else if !utils.ContainsString(models.Difficulties, e.Difficulty) {
			return nil, fmt.Errorf("question %d in %s: invalid difficulty %q", i+1, path, e.Difficulty)
		}
		if e.Status == "" {
			e.Status = models.StatusActive
		} else if !utils.ContainsString(models.Statuses, e.Status) {
			return nil, fmt.Errorf("question %d in %s: invalid status %q", i+1, path, e.Status)
		}
	}
	return bank.Questions, nil
}

// SeedIfEmpty imports the configured bank file when the question table has no
// rows yet. A missing file is not fatal; the admin API can populate the bank.
func SeedIfEmpty(ctx context.Context, store *Store, path string) error {
	count, err := store.CountQuestions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Question bank already has %d questions, skipping seed", count)
		return nil
	}

	entries, err := LoadBankFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No question bank file at %s, starting with an empty bank", path)
			return nil
		}
		return err
	}

	inserted, err := store.ImportQuestions(ctx, entries)
	if err != nil {
		return err
	}
	log.Printf("Seeded question bank with %d questions from %s", inserted, path)
	return nil
}
