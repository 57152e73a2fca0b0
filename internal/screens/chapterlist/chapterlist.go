// Package chapterlist lists the study chapters with their read state.
package chapterlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/screens/chapter"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// ChapterListScreen is a menu of every chapter in reading order.
type ChapterListScreen struct {
	env  screen.Env
	all  []chapters.Chapter
	menu components.Menu
}

var (
	_ screen.Screen          = (*ChapterListScreen)(nil)
	_ screen.KeyHintProvider = (*ChapterListScreen)(nil)
)

// New creates the chapter list.
func New(env screen.Env) *ChapterListScreen {
	all := chapters.All()
	items := make([]components.MenuItem, len(all))
	for i := range all {
		items[i] = components.MenuItem{Action: func() tea.Cmd {
			return router.Push(chapter.New(env, i))
		}}
	}
	s := &ChapterListScreen{
		env:  env,
		all:  all,
		menu: components.NewMenu(items),
	}
	s.refreshLabels()
	return s
}

// Selected returns the index of the highlighted chapter.
func (s *ChapterListScreen) Selected() int {
	return s.menu.Selected
}

func (s *ChapterListScreen) Init() tea.Cmd {
	return nil
}

func (s *ChapterListScreen) Title() string {
	return i18n.T(s.env.Lang(), i18n.KeyChaptersTitle)
}

func (s *ChapterListScreen) KeyHints() []layout.KeyHint {
	lang := s.env.Lang()
	return []layout.KeyHint{
		keys.Hint(keys.Up, lang, i18n.KeyHintNavigate),
		keys.Hint(keys.Enter, lang, i18n.KeyHintSelect),
		keys.Hint(keys.Back, lang, i18n.KeyHintBack),
	}
}

func (s *ChapterListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// refreshLabels rebuilds labels from the current language and read marks.
func (s *ChapterListScreen) refreshLabels() {
	lang := s.env.Lang()
	for i, ch := range s.all {
		label := fmt.Sprintf("%d. %s", ch.Number, ch.Title.In(lang))
		if s.env.Store != nil && s.env.Store.IsRead(ch.ID) {
			label += "  ✓ " + i18n.T(lang, i18n.KeyChapterRead)
		}
		s.menu.Items[i].Label = label
	}
}

func (s *ChapterListScreen) View(width, height int) string {
	s.refreshLabels()
	lang := s.env.Lang()
	cw := components.ContentWidth(width)

	var total int
	if s.env.Store != nil {
		total = s.env.Store.ReadCount()
	}
	progress := components.NewProgressBar(
		i18n.T(lang, i18n.KeyReadingProgress),
		float64(total)/float64(max(len(s.all), 1)),
		true, cw,
	).View()

	var summary string
	if ch, ok := chapters.At(s.menu.Selected); ok {
		summary = theme.Hint.Width(cw).Render(ch.Summary.In(lang))
	}

	body := strings.Join([]string{
		theme.Title.Width(cw).Render(i18n.T(lang, i18n.KeyChaptersTitle)),
		"",
		progress,
		"",
		s.menu.View(),
		summary,
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
