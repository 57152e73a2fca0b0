package chapterlist

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/umlstudy/internal/appstate"
	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/router"
	"github.com/abhisek/umlstudy/internal/screen"
	"github.com/abhisek/umlstudy/internal/screens/chapter"
)

func newTestList(lang i18n.Language) (*ChapterListScreen, screen.Env) {
	env := screen.Env{Store: appstate.New(lang), Log: zerolog.Nop()}
	return New(env), env
}

func TestListsEveryChapter(t *testing.T) {
	s, _ := newTestList(i18n.English)
	view := s.View(100, 40)
	for _, ch := range chapters.All() {
		assert.Contains(t, view, ch.Title.EN)
	}
}

func TestEnterOpensHighlightedChapter(t *testing.T) {
	s, env := newTestList(i18n.English)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.Equal(t, 2, s.Selected())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	c, ok := push.Screen.(*chapter.ChapterScreen)
	require.True(t, ok)

	id := chapters.IDs()[2]
	assert.Equal(t, id, c.Chapter().ID)
	assert.True(t, env.Store.IsRead(id))
}

func TestReadMarkerAppearsAfterReading(t *testing.T) {
	s, env := newTestList(i18n.English)
	marker := "✓ " + i18n.T(i18n.English, i18n.KeyChapterRead)
	assert.NotContains(t, s.View(100, 40), marker)

	env.Store.MarkRead(chapters.IDs()[0])
	assert.Contains(t, s.View(100, 40), marker)
}

func TestFollowsLanguage(t *testing.T) {
	s, env := newTestList(i18n.English)
	env.Store.SetLanguage(i18n.French)

	assert.Equal(t, i18n.T(i18n.French, i18n.KeyChaptersTitle), s.Title())
	assert.Contains(t, s.View(100, 40), chapters.All()[1].Title.FR)
}
