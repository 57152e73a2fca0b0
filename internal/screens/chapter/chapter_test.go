package chapter

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/umlstudy/internal/appstate"
	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	quizscreen "github.com/abhisek/umlstudy/internal/screens/quiz"
)

func testEnv(t *testing.T, lang i18n.Language) screen.Env {
	t.Helper()
	banks, err := bank.LoadAll()
	require.NoError(t, err)
	return screen.Env{Store: appstate.New(lang), Banks: banks, Log: zerolog.Nop()}
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func firstWords(s string, n int) string {
	return strings.Join(strings.Fields(s)[:n], " ")
}

func TestOpeningMarksRead(t *testing.T) {
	env := testEnv(t, i18n.English)
	c := New(env, 1)

	assert.Equal(t, "class-diagrams", c.Chapter().ID)
	assert.True(t, env.Store.IsRead("class-diagrams"))
	assert.Equal(t, 1, env.Store.ReadCount())
}

func TestOutOfRangeIndexFallsBackToFirst(t *testing.T) {
	c := New(testEnv(t, i18n.English), 99)
	assert.Equal(t, chapters.IDs()[0], c.Chapter().ID)
}

func TestFirstSectionExpandedByDefault(t *testing.T) {
	c := New(testEnv(t, i18n.English), 0)
	ch := c.Chapter()
	require.GreaterOrEqual(t, len(ch.Sections), 2)

	assert.True(t, c.Expanded(0))
	assert.False(t, c.Expanded(1))

	out := c.render(90)
	assert.Contains(t, out, firstWords(ch.Sections[0].Body.EN, 3))
	assert.NotContains(t, out, firstWords(ch.Sections[1].Body.EN, 3))
}

func TestDigitTogglesSection(t *testing.T) {
	c := New(testEnv(t, i18n.English), 0)
	ch := c.Chapter()

	c.Update(keyPress("2"))
	assert.True(t, c.Expanded(1))
	assert.Contains(t, c.render(90), firstWords(ch.Sections[1].Body.EN, 3))

	c.Update(keyPress("2"))
	assert.False(t, c.Expanded(1))

	c.Update(keyPress("9"))
	for i := range ch.Sections {
		if i > 0 {
			assert.False(t, c.Expanded(i))
		}
	}
}

func TestToggleAll(t *testing.T) {
	c := New(testEnv(t, i18n.English), 0)
	n := len(c.Chapter().Sections)

	c.Update(keyPress("a"))
	for i := 0; i < n; i++ {
		assert.True(t, c.Expanded(i))
	}
	c.Update(keyPress("a"))
	for i := 0; i < n; i++ {
		assert.False(t, c.Expanded(i))
	}
}

func TestDiagramToggle(t *testing.T) {
	c := New(testEnv(t, i18n.English), 0)
	heading := i18n.T(i18n.English, i18n.KeyDiagram)

	assert.Contains(t, c.render(90), heading)
	c.Update(keyPress("d"))
	assert.NotContains(t, c.render(90), heading)
}

func TestRenderFollowsLanguage(t *testing.T) {
	c := New(testEnv(t, i18n.French), 0)
	assert.Equal(t, c.Chapter().Title.FR, c.Title())
	assert.Contains(t, c.render(90), i18n.Tf(i18n.French, i18n.KeyChapterNumber, 1))
}

func TestNextAndPrevReplaceScreen(t *testing.T) {
	env := testEnv(t, i18n.English)
	c := New(env, 0)

	_, cmd := c.Update(keyPress("left"))
	assert.Nil(t, cmd, "no chapter before the first")

	_, cmd = c.Update(keyPress("right"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	next, ok := msg.Screen.(*ChapterScreen)
	require.True(t, ok)
	assert.Equal(t, chapters.IDs()[1], next.Chapter().ID)
	assert.True(t, env.Store.IsRead(chapters.IDs()[1]))

	last := New(env, chapters.Count()-1)
	_, cmd = last.Update(keyPress("right"))
	assert.Nil(t, cmd, "no chapter after the last")
}

func TestQuizKeyPushesChapterQuiz(t *testing.T) {
	c := New(testEnv(t, i18n.English), 1)

	_, cmd := c.Update(keyPress("q"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	q, ok := msg.Screen.(*quizscreen.QuizScreen)
	require.True(t, ok)
	want := bank.ByCategory(c.env.Banks.For(i18n.English), "class-diagrams")
	assert.Equal(t, len(want), q.Session().Len())
	assert.Positive(t, q.Session().Len())
}

func TestViewFitsViewport(t *testing.T) {
	c := New(testEnv(t, i18n.English), 0)
	view := c.View(100, 20)
	assert.LessOrEqual(t, strings.Count(view, "\n")+1, 20)
}
