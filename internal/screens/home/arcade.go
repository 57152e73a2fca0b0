package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██╗   ██╗███╗   ███╗██╗
 ██║   ██║████╗ ████║██║
 ██║   ██║██╔████╔██║██║
 ╚██████╔╝██║ ╚═╝ ██║███████╗
  ╚═════╝ ╚═╝     ╚═╝╚══════╝`

// renderTitle returns the styled title block, or the app name alone when
// compact.
func renderTitle(lang i18n.Language, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(i18n.T(lang, i18n.KeyAppName))

	block := name
	if !compact {
		block = style.Render(arcadeTitleFull) + "\n" + name
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders reading progress in a double-bordered box.
func renderStatsBar(lang i18n.Language, read, total, questions, cw int) string {
	readStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	qStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	bar := components.NewProgressBar(
		i18n.T(lang, i18n.KeyReadingProgress),
		float64(read)/float64(max(total, 1)),
		false, cw-16,
	).View()

	stats := fmt.Sprintf("%s  %s",
		readStyle.Render(fmt.Sprintf("◆ %d/%d", read, total)),
		qStyle.Render(fmt.Sprintf("? %d", questions)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(bar + "\n" + stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v))
}
