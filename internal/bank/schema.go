package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/umlstudy/internal/quiz"
)

const schemaURL = "schema://question-bank.json"

// Schema is the JSON schema every bank file must satisfy.
var Schema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"category": map[string]any{
				"type":      "string",
				"minLength": 1,
				"pattern":   "^[a-z0-9]+(-[a-z0-9]+)*$",
			},
			"prompt": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": quiz.OptionCount,
				"maxItems": quiz.OptionCount,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"correctOptionIndex": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": quiz.OptionCount - 1,
			},
			"explanation": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"required":             []any{"id", "category", "prompt", "options", "correctOptionIndex", "explanation"},
		"additionalProperties": false,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles Schema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not a Go map with typed ints.
		raw, err := json.Marshal(Schema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
