// Package chapters holds the study guide's static chapter catalogue.
package chapters

import (
	"fmt"

	"github.com/abhisek/umlstudy/internal/i18n"
)

// Section is a collapsible block of text inside a chapter.
type Section struct {
	Heading i18n.Text
	Body    i18n.Text
}

// Chapter is one page of the study guide. ID doubles as the quiz category of
// the questions that cover it.
type Chapter struct {
	ID       string
	Number   int
	Title    i18n.Text
	Summary  i18n.Text
	Diagram  string // ASCII rendering, language independent
	Sections []Section
}

// index is the catalogue keyed by ID, built by init().
var index map[string]int

func init() {
	if err := validateChapters(catalogue); err != nil {
		panic(err)
	}
	index = make(map[string]int, len(catalogue))
	for i, c := range catalogue {
		index[c.ID] = i
	}
}

// All returns every chapter in reading order.
func All() []Chapter {
	out := make([]Chapter, len(catalogue))
	copy(out, catalogue)
	return out
}

// Count returns the number of chapters.
func Count() int {
	return len(catalogue)
}

// ByID returns the chapter with the given ID.
func ByID(id string) (Chapter, error) {
	i, ok := index[id]
	if !ok {
		return Chapter{}, fmt.Errorf("chapter %q not found", id)
	}
	return catalogue[i], nil
}

// At returns the chapter at position i in reading order.
func At(i int) (Chapter, bool) {
	if i < 0 || i >= len(catalogue) {
		return Chapter{}, false
	}
	return catalogue[i], true
}

// Index returns the reading-order position of the chapter with the given ID,
// or -1.
func Index(id string) int {
	i, ok := index[id]
	if !ok {
		return -1
	}
	return i
}

// IDs returns all chapter IDs in reading order.
func IDs() []string {
	ids := make([]string, len(catalogue))
	for i, c := range catalogue {
		ids[i] = c.ID
	}
	return ids
}
