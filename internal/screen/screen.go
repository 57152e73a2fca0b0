package screen

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/umlstudy/internal/appstate"
	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Env is the shared state handed to every screen.
type Env struct {
	Store *appstate.Store
	Banks bank.Banks
	Log   zerolog.Logger
}

// Lang returns the current UI language.
func (e Env) Lang() i18n.Language {
	if e.Store == nil {
		return i18n.DefaultLanguage
	}
	return e.Store.Language()
}
