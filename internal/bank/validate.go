package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/umlstudy/internal/quiz"
)

// ValidationError lists every problem found in one bank.
type ValidationError struct {
	Bank     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bank %q validation failed:\n  %s", e.Bank, strings.Join(e.Problems, "\n  "))
}

// validateQuestions performs the structural checks the schema cannot express.
// Returns the problems found, or nil if the bank is valid.
func validateQuestions(questions []quiz.Question) []string {
	var problems []string

	if len(questions) == 0 {
		return []string{"bank has no questions"}
	}

	seen := make(map[int]int, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question #%d (id %d)", i+1, q.ID)

		if first, dup := seen[q.ID]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate id, first used by question #%d", prefix, first+1))
		} else {
			seen[q.ID] = i
		}

		if strings.TrimSpace(q.Prompt) == "" {
			problems = append(problems, prefix+": empty prompt")
		}
		if strings.TrimSpace(q.Category) == "" {
			problems = append(problems, prefix+": empty category")
		}
		if len(q.Options) != quiz.OptionCount {
			problems = append(problems, fmt.Sprintf("%s: want %d options, got %d", prefix, quiz.OptionCount, len(q.Options)))
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			problems = append(problems, fmt.Sprintf("%s: correctOptionIndex %d out of range", prefix, q.CorrectOptionIndex))
		}

		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			key := strings.ToLower(strings.TrimSpace(o))
			if key == "" {
				problems = append(problems, prefix+": empty option")
				continue
			}
			if opts[key] {
				problems = append(problems, fmt.Sprintf("%s: duplicate option %q", prefix, o))
			}
			opts[key] = true
		}

		if strings.TrimSpace(q.Explanation) == "" {
			problems = append(problems, prefix+": empty explanation")
		}
	}

	return problems
}
