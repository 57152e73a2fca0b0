// Package results shows the score of a finished quiz run.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/quiz"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// RetryMsg asks the quiz screen below to run the same questions again.
type RetryMsg struct{}

// BandMessage returns the localised message for a band.
func BandMessage(lang i18n.Language, b quiz.Band) string {
	switch b {
	case quiz.BandExcellent:
		return i18n.T(lang, i18n.KeyBandExcellent)
	case quiz.BandGood:
		return i18n.T(lang, i18n.KeyBandGood)
	case quiz.BandAverage:
		return i18n.T(lang, i18n.KeyBandAverage)
	default:
		return i18n.T(lang, i18n.KeyBandNeedsWork)
	}
}

func bandColor(b quiz.Band) lipgloss.Style {
	switch b {
	case quiz.BandExcellent:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case quiz.BandGood:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	case quiz.BandAverage:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
}

// ResultsScreen renders a quiz summary with a scrollable breakdown.
type ResultsScreen struct {
	env     screen.Env
	lang    i18n.Language
	summary quiz.Summary
	vp      viewport.Model
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
)

// New creates a results screen. lang is the language the quiz was taken in.
func New(env screen.Env, lang i18n.Language, summary quiz.Summary) *ResultsScreen {
	return &ResultsScreen{
		env:     env,
		lang:    lang,
		summary: summary,
		vp:      viewport.New(),
	}
}

// Summary returns the summary being shown.
func (r *ResultsScreen) Summary() quiz.Summary {
	return r.summary
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return i18n.T(r.lang, i18n.KeyResultsTitle)
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		keys.Hint(keys.Scroll, r.lang, i18n.KeyHintScroll),
		keys.Hint(keys.Retry, r.lang, i18n.KeyHintRetry),
		keys.Hint(keys.Enter, r.lang, i18n.KeyHintHome),
		keys.Hint(keys.Back, r.lang, i18n.KeyHintBack),
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Retry):
			r.env.Log.Debug().Msg("quiz retry requested")
			return r, func() tea.Msg { return router.PopScreenMsg{Then: RetryMsg{}} }
		case key.Matches(kmsg, keys.Enter):
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}

	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	score := bandColor(r.summary.Band).Render(fmt.Sprintf("%d%%", r.summary.Percentage))
	top := lipgloss.JoinVertical(lipgloss.Center,
		score,
		"",
		theme.Body.Render(i18n.Tf(r.lang, i18n.KeyResultsScore,
			r.summary.Score, r.summary.Total, r.summary.Percentage)),
		theme.Subtitle.Render(BandMessage(r.lang, r.summary.Band)),
	)
	top = components.ArcadeCard(top, cw)

	heading := theme.Heading.Render(i18n.T(r.lang, i18n.KeyResultsBreakdown))

	vpHeight := height - lipgloss.Height(top) - 3
	if vpHeight < 3 {
		vpHeight = 3
	}
	r.vp.SetWidth(cw)
	r.vp.SetHeight(vpHeight)
	r.vp.SetContent(r.breakdown(cw))

	body := lipgloss.JoinVertical(lipgloss.Left, top, "", heading, r.vp.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (r *ResultsScreen) breakdown(width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(width - 4)
	for i, item := range r.summary.Breakdown {
		mark := theme.Correct.Render("✓")
		if !item.Record.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, wrap.Render(item.Question.Prompt)))

		answer := i18n.Tf(r.lang, i18n.KeyResultsYourAnswer, item.Question.Option(item.Record.SelectedOptionIndex))
		b.WriteString("    " + theme.Muted.Render(answer) + "\n")
		if !item.Record.IsCorrect {
			correct := i18n.Tf(r.lang, i18n.KeyQuizCorrectAnswer, item.Question.CorrectOption())
			b.WriteString("    " + theme.Correct.Render(correct) + "\n")
		}
	}
	return b.String()
}
