// Package appstate holds the process-wide UI state shared by all screens.
//
// Ownership: the home screen is the only writer of the language; the chapter
// reader is the only writer of read marks. Every other screen reads. The store
// is used from the Bubble Tea update loop only and is not safe for concurrent
// use.
package appstate

import (
	"github.com/abhisek/umlstudy/internal/i18n"
)

// Store is the explicit replacement for global language and progress state.
type Store struct {
	lang      i18n.Language
	read      map[string]bool
	listeners []func(from, to i18n.Language)
}

// New creates a Store with the given starting language. Invalid languages fall
// back to the default.
func New(lang i18n.Language) *Store {
	if !lang.Valid() {
		lang = i18n.DefaultLanguage
	}
	return &Store{
		lang: lang,
		read: make(map[string]bool),
	}
}

// Language returns the current UI language.
func (s *Store) Language() i18n.Language {
	return s.lang
}

// SetLanguage switches the UI language. Invalid languages are ignored.
func (s *Store) SetLanguage(lang i18n.Language) {
	if !lang.Valid() || lang == s.lang {
		return
	}
	from := s.lang
	s.lang = lang
	for _, fn := range s.listeners {
		fn(from, lang)
	}
}

// ToggleLanguage switches to the next supported language and returns it.
func (s *Store) ToggleLanguage() i18n.Language {
	s.SetLanguage(s.lang.Next())
	return s.lang
}

// OnLanguageChange registers fn to run after every language change.
func (s *Store) OnLanguageChange(fn func(from, to i18n.Language)) {
	s.listeners = append(s.listeners, fn)
}

// MarkRead records that the chapter with the given ID has been opened.
// Returns true if it was not read before.
func (s *Store) MarkRead(chapterID string) bool {
	if s.read[chapterID] {
		return false
	}
	s.read[chapterID] = true
	return true
}

// IsRead reports whether the chapter has been opened.
func (s *Store) IsRead(chapterID string) bool {
	return s.read[chapterID]
}

// ReadCount returns the number of chapters opened.
func (s *Store) ReadCount() int {
	return len(s.read)
}

// ReadingProgress returns the fraction of total chapters read, in [0, 1].
func (s *Store) ReadingProgress(total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(len(s.read)) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}
