// Package quiz is the screen that runs a quiz session.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/quiz"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/screens/results"
	"github.com/abhisek/umlstudy/internal/ui/components"
	"github.com/abhisek/umlstudy/internal/ui/keys"
	"github.com/abhisek/umlstudy/internal/ui/layout"
	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// QuizScreen drives a quiz.Session from key presses.
type QuizScreen struct {
	env      screen.Env
	lang     i18n.Language
	category string
	session  *quiz.Session
	runID    uuid.UUID
	log      zerolog.Logger
	notice   string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a quiz over the bank of the current language. A non-empty
// category restricts it to that chapter's questions. The language and bank
// are fixed for the lifetime of the screen.
func New(env screen.Env, category string) *QuizScreen {
	lang := env.Lang()
	questions := env.Banks.For(lang)
	if category != "" {
		questions = bank.ByCategory(questions, category)
	}

	q := &QuizScreen{
		env:      env,
		lang:     lang,
		category: category,
		session:  quiz.NewSession(questions),
	}
	q.newRun()
	return q
}

func (q *QuizScreen) newRun() {
	q.runID = uuid.New()
	q.log = q.env.Log.With().
		Str("run", q.runID.String()).
		Str("lang", string(q.lang)).
		Str("category", q.category).
		Logger()
	q.notice = ""
}

// Session exposes the underlying session.
func (q *QuizScreen) Session() *quiz.Session {
	return q.session
}

// RunID identifies the current attempt.
func (q *QuizScreen) RunID() uuid.UUID {
	return q.runID
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if q.category == "" {
		return i18n.T(q.lang, i18n.KeyQuizTitle)
	}
	return i18n.Tf(q.lang, i18n.KeyQuizChapterTitle, q.chapterTitle(q.category))
}

func (q *QuizScreen) chapterTitle(id string) string {
	ch, err := chapters.ByID(id)
	if err != nil {
		return id
	}
	return ch.Title.In(q.lang)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	back := keys.Hint(keys.Back, q.lang, i18n.KeyHintBack)
	switch q.session.Phase() {
	case quiz.PhaseNotStarted:
		if q.session.Len() == 0 {
			return []layout.KeyHint{back}
		}
		return []layout.KeyHint{keys.Hint(keys.Enter, q.lang, i18n.KeyHintStart), back}
	case quiz.PhaseAnswering:
		return []layout.KeyHint{
			keys.Hint(keys.Answer, q.lang, i18n.KeyHintAnswer),
			keys.Hint(keys.Up, q.lang, i18n.KeyHintNavigate),
			keys.Hint(keys.Enter, q.lang, i18n.KeyHintConfirm),
			back,
		}
	case quiz.PhaseConfirmed:
		return []layout.KeyHint{keys.Hint(keys.Continue, q.lang, i18n.KeyHintContinue), back}
	default:
		return []layout.KeyHint{keys.Hint(keys.Retry, q.lang, i18n.KeyHintRetry), back}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case results.RetryMsg:
		q.retry()
		return q, nil
	case tea.KeyMsg:
		return q, q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch q.session.Phase() {
	case quiz.PhaseNotStarted:
		if key.Matches(msg, keys.Enter) && q.session.Len() > 0 {
			q.start()
		}
	case quiz.PhaseAnswering:
		return q.handleAnswering(msg)
	case quiz.PhaseConfirmed:
		if key.Matches(msg, keys.Continue) {
			return q.next()
		}
	case quiz.PhaseComplete:
		if key.Matches(msg, keys.Retry) {
			q.retry()
		}
	}
	return nil
}

func (q *QuizScreen) handleAnswering(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Answer):
		q.selectOption(keys.Digit(msg.String()))
	case key.Matches(msg, keys.Up):
		q.moveSelection(-1)
	case key.Matches(msg, keys.Down):
		q.moveSelection(1)
	case key.Matches(msg, keys.Enter):
		q.confirm()
	}
	return nil
}

func (q *QuizScreen) start() {
	q.session.Start()
	q.log.Info().Int("questions", q.session.Len()).Msg("quiz started")
}

func (q *QuizScreen) retry() {
	q.session.Restart()
	q.newRun()
	if q.session.Len() > 0 {
		q.start()
	}
}

func (q *QuizScreen) selectOption(i int) {
	if err := q.session.SelectOption(i); err != nil {
		q.log.Debug().Err(err).Msg("selection rejected")
		return
	}
	q.notice = ""
}

func (q *QuizScreen) moveSelection(delta int) {
	cur, ok := q.session.Current()
	if !ok {
		return
	}
	n := len(cur.Options)
	sel := q.session.State().SelectedOption
	switch {
	case sel == quiz.NoSelection && delta > 0:
		sel = 0
	case sel == quiz.NoSelection:
		sel = n - 1
	default:
		sel = (sel + delta + n) % n
	}
	q.selectOption(sel)
}

func (q *QuizScreen) confirm() {
	rec, err := q.session.Confirm()
	if err != nil {
		q.log.Debug().Err(err).Msg("confirm rejected")
		if errors.Is(err, quiz.ErrNoSelection) {
			q.notice = i18n.T(q.lang, i18n.KeyQuizSelectFirst)
		}
		return
	}
	q.notice = ""
	q.log.Debug().
		Int("question", rec.QuestionID).
		Bool("correct", rec.IsCorrect).
		Msg("answer confirmed")
}

func (q *QuizScreen) next() tea.Cmd {
	if err := q.session.Next(); err != nil {
		q.log.Debug().Err(err).Msg("next rejected")
		return nil
	}
	if q.session.Phase() != quiz.PhaseComplete {
		return nil
	}

	summary, err := q.session.Summary()
	if err != nil {
		q.log.Error().Err(err).Msg("summarize quiz")
		return nil
	}
	q.log.Info().
		Int("score", summary.Score).
		Int("total", summary.Total).
		Int("percentage", summary.Percentage).
		Str("band", string(summary.Band)).
		Msg("quiz complete")

	return router.Push(results.New(q.env, q.lang, summary))
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var content string
	switch q.session.Phase() {
	case quiz.PhaseNotStarted:
		content = q.viewIntro(cw)
	case quiz.PhaseComplete:
		content = q.viewComplete(cw)
	default:
		content = q.viewQuestion(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) viewIntro(cw int) string {
	if q.session.Len() == 0 {
		return components.ArcadeCard(theme.Subtitle.Render(i18n.T(q.lang, i18n.KeyQuizNoQuestions)), cw)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(q.Title()),
		"",
		theme.Body.Render(i18n.Tf(q.lang, i18n.KeyQuizIntro, q.session.Len())),
		"",
		theme.Hint.Width(cw-6).Align(lipgloss.Center).Render(i18n.T(q.lang, i18n.KeyQuizRules)),
	)
	return components.ArcadeCard(body, cw)
}

func (q *QuizScreen) viewQuestion(cw int) string {
	cur, _ := q.session.Current()
	st := q.session.State()

	status := fmt.Sprintf("%s  %s   %s",
		components.Badge(i18n.Tf(q.lang, i18n.KeyQuizQuestionOf, st.CurrentIndex+1, q.session.Len())),
		theme.Muted.Render(q.chapterTitle(cur.Category)),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(i18n.Tf(q.lang, i18n.KeyQuizScore, st.Score)),
	)
	bar := components.NewProgressBar("", q.session.Progress(), true, cw).View()

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(cur.Prompt)
	options := components.MultiChoice{
		Options:      cur.Options,
		Selected:     st.SelectedOption,
		Confirmed:    st.Confirmed,
		CorrectIndex: cur.CorrectOptionIndex,
		Width:        cw,
	}.View()

	sections := []string{status, bar, "", prompt, "", options}

	switch {
	case st.Confirmed:
		sections = append(sections, q.viewFeedback(cur, cw))
	case q.notice != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(q.notice))
	}
	return strings.Join(sections, "\n")
}

func (q *QuizScreen) viewFeedback(cur quiz.Question, cw int) string {
	rec, _ := q.session.LastRecord()
	var verdict string
	if rec.IsCorrect {
		verdict = theme.Correct.Render(i18n.T(q.lang, i18n.KeyQuizCorrect))
	} else {
		verdict = theme.Incorrect.Render(i18n.T(q.lang, i18n.KeyQuizIncorrect)) + "  " +
			theme.Muted.Render(i18n.Tf(q.lang, i18n.KeyQuizCorrectAnswer, cur.CorrectOption()))
	}
	explanation := theme.Body.Width(cw - 4).Render(cur.Explanation)
	return components.ArcadeCard(verdict+"\n\n"+explanation, cw)
}

func (q *QuizScreen) viewComplete(cw int) string {
	summary, err := q.session.Summary()
	if err != nil {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(i18n.T(q.lang, i18n.KeyResultsTitle)),
		"",
		theme.Body.Render(i18n.Tf(q.lang, i18n.KeyResultsScore, summary.Score, summary.Total, summary.Percentage)),
		theme.Subtitle.Render(results.BandMessage(q.lang, summary.Band)),
	)
	return components.ArcadeCard(body, cw)
}
