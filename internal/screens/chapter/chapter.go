// Package chapter is the reader for a single study chapter.
package chapter

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	quizscreen "github.com/abhisek/umlstudy/internal/screens/quiz"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// ChapterScreen renders one chapter with collapsible sections.
type ChapterScreen struct {
	env         screen.Env
	index       int
	ch          chapters.Chapter
	expanded    []bool
	showDiagram bool
	vp          viewport.Model
}

var (
	_ screen.Screen          = (*ChapterScreen)(nil)
	_ screen.KeyHintProvider = (*ChapterScreen)(nil)
)

// New opens the chapter at index and marks it read. The first section
// starts expanded.
func New(env screen.Env, index int) *ChapterScreen {
	ch, ok := chapters.At(index)
	if !ok {
		index = 0
		ch, _ = chapters.At(0)
	}

	expanded := make([]bool, len(ch.Sections))
	if len(expanded) > 0 {
		expanded[0] = true
	}

	if env.Store != nil && env.Store.MarkRead(ch.ID) {
		env.Log.Info().Str("chapter", ch.ID).Int("read", env.Store.ReadCount()).Msg("chapter read")
	}

	return &ChapterScreen{
		env:         env,
		index:       index,
		ch:          ch,
		expanded:    expanded,
		showDiagram: true,
		vp:          viewport.New(),
	}
}

// Chapter returns the chapter being read.
func (c *ChapterScreen) Chapter() chapters.Chapter {
	return c.ch
}

// Expanded reports whether section i is expanded.
func (c *ChapterScreen) Expanded(i int) bool {
	return i >= 0 && i < len(c.expanded) && c.expanded[i]
}

func (c *ChapterScreen) Init() tea.Cmd {
	return nil
}

func (c *ChapterScreen) Title() string {
	return c.ch.Title.In(c.env.Lang())
}

func (c *ChapterScreen) KeyHints() []layout.KeyHint {
	lang := c.env.Lang()
	return []layout.KeyHint{
		keys.Hint(keys.Scroll, lang, i18n.KeyHintScroll),
		keys.Hint(keys.Sections, lang, i18n.KeyHintToggleSection),
		keys.Hint(keys.Diagram, lang, i18n.KeyHintDiagram),
		keys.Hint(keys.Prev, lang, i18n.KeyHintPrevNext),
		keys.Hint(keys.Quiz, lang, i18n.KeyHintChapterQuiz),
		keys.Hint(keys.Back, lang, i18n.KeyHintBack),
	}
}

func (c *ChapterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Sections):
			c.toggleSection(kmsg.String())
			return c, nil
		case key.Matches(kmsg, keys.Diagram):
			c.showDiagram = !c.showDiagram
			return c, nil
		case key.Matches(kmsg, keys.Prev):
			return c, c.open(c.index - 1)
		case key.Matches(kmsg, keys.Next):
			return c, c.open(c.index + 1)
		case key.Matches(kmsg, keys.Quiz):
			c.env.Log.Debug().Str("chapter", c.ch.ID).Msg("chapter quiz")
			return c, router.Push(quizscreen.New(c.env, c.ch.ID))
		}
	}

	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	return c, cmd
}

func (c *ChapterScreen) toggleSection(k string) {
	if k == "a" {
		open := false
		for _, e := range c.expanded {
			if !e {
				open = true
				break
			}
		}
		for i := range c.expanded {
			c.expanded[i] = open
		}
		return
	}
	if i := keys.Digit(k); i >= 0 && i < len(c.expanded) {
		c.expanded[i] = !c.expanded[i]
	}
}

func (c *ChapterScreen) open(index int) tea.Cmd {
	if _, ok := chapters.At(index); !ok {
		return nil
	}
	next := New(c.env, index)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (c *ChapterScreen) View(width, height int) string {
	cw := width - 4
	if cw > 96 {
		cw = 96
	}
	c.vp.SetWidth(cw)
	c.vp.SetHeight(height)
	c.vp.SetContent(c.render(cw))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, c.vp.View())
}

func (c *ChapterScreen) render(width int) string {
	lang := c.env.Lang()
	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(width).PaddingLeft(4)

	var b strings.Builder
	b.WriteString(components.Badge(i18n.Tf(lang, i18n.KeyChapterNumber, c.ch.Number)))
	b.WriteString("  ")
	b.WriteString(theme.Title.Render(c.ch.Title.In(lang)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Render(c.ch.Summary.In(lang)))
	b.WriteString("\n\n")

	if c.showDiagram && c.ch.Diagram != "" {
		b.WriteString(theme.Heading.Render(i18n.T(lang, i18n.KeyDiagram)))
		b.WriteString("\n")
		b.WriteString(theme.Diagram.Render(c.ch.Diagram))
		b.WriteString("\n\n")
	}

	for i, s := range c.ch.Sections {
		marker := i18n.T(lang, i18n.KeySectionCollapsed)
		if c.expanded[i] {
			marker = i18n.T(lang, i18n.KeySectionExpanded)
		}
		b.WriteString(theme.Heading.Render(fmt.Sprintf("%s %d. %s", marker, i+1, s.Heading.In(lang))))
		b.WriteString("\n")
		if c.expanded[i] {
			b.WriteString(wrap.Render(s.Body.In(lang)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
