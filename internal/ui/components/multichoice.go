package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// MultiChoice renders a question's options. It holds no state of its own;
// the quiz session decides what is selected and whether it is confirmed.
type MultiChoice struct {
	Options      []string
	Selected     int // -1 for none
	Confirmed    bool
	CorrectIndex int
	Width        int
}

// View renders one line per option, numbered from 1.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if m.Width > 0 {
			line = lipgloss.NewStyle().Width(m.Width).Render(line)
		}

		var style lipgloss.Style
		switch {
		case m.Confirmed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Confirmed && i == m.Selected:
			style = theme.Incorrect
		case m.Confirmed:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
