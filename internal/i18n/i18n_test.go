package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCataloguesComplete(t *testing.T) {
	for _, lang := range Languages() {
		for k := Key(0); k < numKeys; k++ {
			assert.NotEmptyf(t, strings.TrimSpace(T(lang, k)), "language %s is missing key %d", lang, k)
		}
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(English, KeyMenuQuiz), T(Language("de"), KeyMenuQuiz))
}

func TestT_OutOfRangeKey(t *testing.T) {
	assert.Empty(t, T(English, numKeys))
	assert.Empty(t, T(English, Key(-1)))
}

func TestTf(t *testing.T) {
	assert.Equal(t, "Question 2 of 5", Tf(English, KeyQuizQuestionOf, 2, 5))
	assert.Equal(t, "Question 2 sur 5", Tf(French, KeyQuizQuestionOf, 2, 5))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"FR", French, false},
		{" fr ", French, false},
		{"fr-CA", French, false},
		{"en-GB", English, false},
		{"fr_FR.UTF-8", French, false},
		{"en_US", English, false},
		{"", "", true},
		{"de", "", true},
		{"!!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageNext(t *testing.T) {
	assert.Equal(t, French, English.Next())
	assert.Equal(t, English, French.Next())
	assert.Equal(t, DefaultLanguage, Language("xx").Next())
}

func TestTextIn(t *testing.T) {
	txt := Text{EN: "Class", FR: "Classe"}
	assert.Equal(t, "Class", txt.In(English))
	assert.Equal(t, "Classe", txt.In(French))
	assert.Equal(t, "Class", Text{EN: "Class"}.In(French))
	assert.True(t, txt.Complete())
	assert.False(t, Text{EN: "Class"}.Complete())
}
