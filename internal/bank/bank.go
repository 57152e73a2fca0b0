// Package bank loads the quiz question banks bundled with the binary.
package bank

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/quiz"
)

//go:embed data/*.json
var dataFS embed.FS

// Banks maps each language to its question bank.
type Banks map[i18n.Language][]quiz.Question

// For returns the bank for lang, or the default language's bank if lang has none.
func (b Banks) For(lang i18n.Language) []quiz.Question {
	if qs, ok := b[lang]; ok {
		return qs
	}
	return b[i18n.DefaultLanguage]
}

// Load returns the validated bundled bank for lang.
func Load(lang i18n.Language) ([]quiz.Question, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("load bank: unsupported language %q", lang)
	}
	name := "data/" + string(lang) + ".json"
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", name, err)
	}
	return Parse(string(lang), raw)
}

// LoadAll loads the bundled bank of every supported language.
func LoadAll() (Banks, error) {
	banks := make(Banks, len(i18n.Languages()))
	for _, lang := range i18n.Languages() {
		qs, err := Load(lang)
		if err != nil {
			return nil, err
		}
		banks[lang] = qs
	}
	return banks, nil
}

// LoadFile parses and validates a bank file from disk.
func LoadFile(path string) ([]quiz.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(filepath.Base(path), raw)
}

// Parse decodes raw JSON into questions, validating it against Schema and the
// structural rules. name identifies the bank in errors.
func Parse(name string, raw []byte) ([]quiz.Question, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("bank %q: invalid JSON: %w", name, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &ValidationError{Bank: name, Problems: []string{err.Error()}}
	}

	var questions []quiz.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("bank %q: decode questions: %w", name, err)
	}

	if problems := validateQuestions(questions); len(problems) > 0 {
		return nil, &ValidationError{Bank: name, Problems: problems}
	}
	return questions, nil
}

// ByCategory returns the questions in category, preserving bank order.
func ByCategory(questions []quiz.Question, category string) []quiz.Question {
	var out []quiz.Question
	for _, q := range questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func Categories(questions []quiz.Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
