package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quizbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBankFile(t *testing.T) {
	path := writeBank(t, `questions:
  - category: Python
    questionText: What is a decorator?
    options: ["A wrapper function", "A class", "A loop"]
    correctAnswer: 0
    explanation: Decorators wrap callables.
    difficulty: hard
    status: inactive
  - category: Aptitude
    questionText: 5 + 7?
    options: ["11", "12"]
    correctAnswer: 1
`)

	entries, err := LoadBankFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "hard", entries[0].Difficulty)
	assert.Equal(t, "inactive", entries[0].Status)

	// defaults applied where the file is silent
	assert.Equal(t, "medium", entries[1].Difficulty)
	assert.Equal(t, "active", entries[1].Status)
}

func TestLoadBankFileValidation(t *testing.T) {
	cases := map[string]string{
		"missing category": `questions:
  - questionText: q
    options: ["a", "b"]
    correctAnswer: 0
`,
		"missing question text": `questions:
  - category: c
    options: ["a", "b"]
    correctAnswer: 0
`,
		"too few options": `questions:
  - category: c
    questionText: q
    options: ["a"]
    correctAnswer: 0
`,
		"correct answer out of range": `questions:
  - category: c
    questionText: q
    options: ["a", "b"]
    correctAnswer: 5
`,
		"negative correct answer": `questions:
  - category: c
    questionText: q
    options: ["a", "b"]
    correctAnswer: -1
`,
		"invalid difficulty": `questions:
  - category: c
    questionText: q
    options: ["a", "b"]
    correctAnswer: 0
    difficulty: brutal
`,
		"invalid status": `questions:
  - category: c
    questionText: q
    options: ["a", "b"]
    correctAnswer: 0
    status: archived
`,
		"not yaml": "{{{",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadBankFile(writeBank(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadBankFileMissing(t *testing.T) {
	_, err := LoadBankFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
