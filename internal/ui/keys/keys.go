// Package keys holds the key bindings shared by the screens.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/ui/layout"
)

var (
	Up       = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", ""))
	Down     = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", ""))
	Enter    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", ""))
	Continue = key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", ""))
	Back     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", ""))
	Quit     = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", ""))
	Language = key.NewBinding(key.WithKeys("l"), key.WithHelp("l", ""))
	Scroll   = key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓/PgUp/PgDn", ""))
	Sections = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "a"), key.WithHelp("1-9/a", ""))
	Diagram  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", ""))
	Prev     = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", ""))
	Next     = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", ""))
	Quiz     = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", ""))
	Answer   = key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", ""))
	Retry    = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", ""))
)

// Hint renders b as a footer hint described by the localised key.
func Hint(b key.Binding, lang i18n.Language, desc i18n.Key) layout.KeyHint {
	return layout.KeyHint{Key: b.Help().Key, Description: i18n.T(lang, desc)}
}

// Digit returns the zero-based index of a digit key, or -1.
func Digit(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
