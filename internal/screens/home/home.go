package home

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/screens/chapterlist"
	quizscreen "github.com/abhisek/umlstudy/internal/screens/quiz"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
)

// Menu positions.
const (
	itemChapters = iota
	itemQuiz
	itemLanguage
	itemQuit
)

// HomeScreen is the main menu. It is the only screen that changes the
// UI language.
type HomeScreen struct {
	env  screen.Env
	menu components.Menu
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(env screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	items := []components.MenuItem{
		itemChapters: {Action: func() tea.Cmd {
			return router.Push(chapterlist.New(env))
		}},
		itemQuiz: {Action: func() tea.Cmd {
			return router.Push(quizscreen.New(env, ""))
		}},
		itemLanguage: {Action: func() tea.Cmd {
			h.toggleLanguage()
			return nil
		}},
		itemQuit: {Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.refreshLabels()
	return h
}

func (h *HomeScreen) toggleLanguage() {
	if h.env.Store == nil {
		return
	}
	h.env.Store.ToggleLanguage()
	h.refreshLabels()
}

func (h *HomeScreen) refreshLabels() {
	lang := h.env.Lang()
	h.menu.Items[itemChapters].Label = i18n.T(lang, i18n.KeyMenuChapters)
	h.menu.Items[itemQuiz].Label = i18n.T(lang, i18n.KeyMenuQuiz)
	h.menu.Items[itemLanguage].Label = i18n.Tf(lang, i18n.KeyMenuLanguage, lang.Name())
	h.menu.Items[itemQuit].Label = i18n.T(lang, i18n.KeyMenuQuit)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Language) {
		h.toggleLanguage()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	lang := h.env.Lang()
	return []layout.KeyHint{
		keys.Hint(keys.Up, lang, i18n.KeyHintNavigate),
		keys.Hint(keys.Enter, lang, i18n.KeyHintSelect),
		{Key: keys.Language.Help().Key, Description: lang.Next().Name()},
		keys.Hint(keys.Quit, lang, i18n.KeyHintQuit),
	}
}

func (h *HomeScreen) View(width, height int) string {
	lang := h.env.Lang()
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)
	total := chapters.Count()
	read := 0
	if h.env.Store != nil {
		read = h.env.Store.ReadCount()
	}

	var sections []string
	sections = append(sections, renderTitle(lang, cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(MascotFor(read, total), cw))
	}
	sections = append(sections, renderStatsBar(lang, read, total, len(h.env.Banks.For(lang)), cw))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.ButtonsView(buttonWidth)))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return i18n.T(h.env.Lang(), i18n.KeyHomeTitle)
}
