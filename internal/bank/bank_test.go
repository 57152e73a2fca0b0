package bank

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/quiz"
)

func validQuestion(id int) map[string]any {
	return map[string]any{
		"id":                 id,
		"category":           "class-diagrams",
		"prompt":             "Which marker is private?",
		"options":            []string{"+", "#", "~", "-"},
		"correctOptionIndex": 3,
		"explanation":        "'-' is private.",
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestLoadAll(t *testing.T) {
	banks, err := LoadAll()
	require.NoError(t, err)

	for _, lang := range i18n.Languages() {
		assert.NotEmpty(t, banks[lang], "bank for %s", lang)
	}
}

func TestBundledCategoriesNameChapters(t *testing.T) {
	banks, err := LoadAll()
	require.NoError(t, err)

	for lang, qs := range banks {
		for _, cat := range Categories(qs) {
			_, err := chapters.ByID(cat)
			assert.NoError(t, err, "bank %s category %q", lang, cat)
		}
	}
}

func TestLoad_UnsupportedLanguage(t *testing.T) {
	_, err := Load(i18n.Language("de"))
	require.Error(t, err)
}

func TestBanksFor_FallsBack(t *testing.T) {
	b := Banks{i18n.English: []quiz.Question{{ID: 1}}}
	assert.Len(t, b.For(i18n.French), 1)
}

func TestParse_Valid(t *testing.T) {
	qs, err := Parse("test", mustJSON(t, []any{validQuestion(1), validQuestion(2)}))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, 3, qs[0].CorrectOptionIndex)
	assert.Equal(t, "-", qs[0].CorrectOption())
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse("test", []byte("[{"))
	require.Error(t, err)
	var verr *ValidationError
	assert.NotErrorAs(t, err, &verr)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(qs []map[string]any) []map[string]any
	}{
		{"empty bank", func([]map[string]any) []map[string]any { return []map[string]any{} }},
		{"three options", func(qs []map[string]any) []map[string]any {
			qs[0]["options"] = []string{"a", "b", "c"}
			return qs
		}},
		{"answer out of range", func(qs []map[string]any) []map[string]any {
			qs[0]["correctOptionIndex"] = 4
			return qs
		}},
		{"missing explanation", func(qs []map[string]any) []map[string]any {
			delete(qs[0], "explanation")
			return qs
		}},
		{"unknown field", func(qs []map[string]any) []map[string]any {
			qs[0]["hint"] = "nope"
			return qs
		}},
		{"bad category", func(qs []map[string]any) []map[string]any {
			qs[0]["category"] = "Class Diagrams"
			return qs
		}},
		{"duplicate id", func(qs []map[string]any) []map[string]any {
			qs[1]["id"] = qs[0]["id"]
			return qs
		}},
		{"duplicate option", func(qs []map[string]any) []map[string]any {
			qs[0]["options"] = []string{"a", "b", "A", "c"}
			return qs
		}},
		{"blank prompt", func(qs []map[string]any) []map[string]any {
			qs[0]["prompt"] = "   "
			return qs
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := tt.mutate([]map[string]any{validQuestion(1), validQuestion(2)})
			_, err := Parse("test", mustJSON(t, qs))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "test", verr.Bank)
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestValidateQuestions_ReportsAllProblems(t *testing.T) {
	qs := []quiz.Question{
		{ID: 1, Category: "c", Prompt: "p", Options: []string{"a", "b", "c", "d"}, CorrectOptionIndex: 0, Explanation: "e"},
		{ID: 1, Category: "c", Prompt: "", Options: []string{"a", "b"}, CorrectOptionIndex: 5, Explanation: ""},
	}
	problems := validateQuestions(qs)
	assert.Len(t, problems, 5)
	assert.Contains(t, problems[0], "duplicate id")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, mustJSON(t, []any{validQuestion(9)}), 0o600))

	qs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9, qs[0].ID)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestByCategory(t *testing.T) {
	qs := []quiz.Question{
		{ID: 1, Category: "a"},
		{ID: 2, Category: "b"},
		{ID: 3, Category: "a"},
	}
	got := ByCategory(qs, "a")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Empty(t, ByCategory(qs, "z"))
	assert.Equal(t, []string{"a", "b"}, Categories(qs))
}
