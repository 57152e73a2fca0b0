package app

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/umlstudy/internal/appstate"
	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/screens/home"
	quizscreen "github.com/abhisek/umlstudy/internal/screens/quiz"
	"github.com/abhisek/umlstudy/internal/screens/welcome"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Store  *appstate.Store
	Banks  bank.Banks
	Logger zerolog.Logger

	// Splash shows the welcome animation before the home screen.
	Splash bool

	// StartQuiz opens a quiz on top of the home screen. QuizCategory
	// optionally restricts it to one chapter.
	StartQuiz    bool
	QuizCategory string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack described by opts.
func newAppModel(opts Options) AppModel {
	store := opts.Store
	if store == nil {
		store = appstate.New(i18n.DefaultLanguage)
	}
	env := screen.Env{Store: store, Banks: opts.Banks, Log: opts.Logger}

	var initial screen.Screen = home.New(env)
	if opts.Splash && !opts.StartQuiz {
		initial = welcome.New(env, func() screen.Screen { return home.New(env) })
	}

	m := AppModel{
		env:    env,
		router: router.New(initial),
	}
	if opts.StartQuiz {
		m.router.Push(quizscreen.New(env, opts.QuizCategory))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		m.env.Log.Debug().Str("screen", fmt.Sprintf("%T", screenOf(msg))).Msg("navigate")
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func screenOf(msg tea.Msg) screen.Screen {
	switch msg := msg.(type) {
	case router.PushScreenMsg:
		return msg.Screen
	case router.ReplaceScreenMsg:
		return msg.Screen
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	lang := m.env.Lang()
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(layout.HeaderInfo{
		AppName:  i18n.T(lang, i18n.KeyAppName),
		Title:    title,
		Language: strings.ToUpper(string(lang)),
		Read:     m.env.Store.ReadCount(),
		Chapters: chapters.Count(),
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(lang, active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(lang i18n.Language, active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: i18n.T(lang, i18n.KeyHintBack)},
			{Key: "Ctrl+C", Description: i18n.T(lang, i18n.KeyHintQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T(lang, i18n.KeyHintNavigate)},
		{Key: "Enter", Description: i18n.T(lang, i18n.KeyHintSelect)},
		{Key: "Ctrl+C", Description: i18n.T(lang, i18n.KeyHintQuit)},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
