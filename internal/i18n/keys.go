package i18n

import "fmt"

// Key identifies a UI string. Every key must be present in every catalogue.
type Key int

const (
	KeyAppName Key = iota
	KeyTagline
	KeyLanguageName
	KeyPressAnyKey

	// Home
	KeyHomeTitle
	KeyMenuChapters
	KeyMenuQuiz
	KeyMenuLanguage
	KeyMenuQuit
	KeyReadingProgress

	// Footer hints
	KeyHintNavigate
	KeyHintSelect
	KeyHintBack
	KeyHintQuit
	KeyHintScroll
	KeyHintToggleSection
	KeyHintDiagram
	KeyHintPrevNext
	KeyHintChapterQuiz
	KeyHintAnswer
	KeyHintConfirm
	KeyHintContinue
	KeyHintStart
	KeyHintRetry
	KeyHintHome

	// Chapters
	KeyChaptersTitle
	KeyChapterNumber
	KeyChapterRead
	KeyDiagram
	KeySectionCollapsed
	KeySectionExpanded

	// Quiz
	KeyQuizTitle
	KeyQuizChapterTitle
	KeyQuizIntro
	KeyQuizRules
	KeyQuizQuestionOf
	KeyQuizScore
	KeyQuizSelectFirst
	KeyQuizCorrect
	KeyQuizIncorrect
	KeyQuizCorrectAnswer
	KeyQuizNoQuestions

	// Results
	KeyResultsTitle
	KeyResultsScore
	KeyResultsBreakdown
	KeyResultsYourAnswer
	KeyBandExcellent
	KeyBandGood
	KeyBandAverage
	KeyBandNeedsWork

	numKeys
)

// catalogue holds one string per Key.
type catalogue [numKeys]string

var catalogues = map[Language]*catalogue{
	English: &english,
	French:  &french,
}

// T returns the string for key in lang. Unknown languages fall back to English.
func T(lang Language, key Key) string {
	cat, ok := catalogues[lang]
	if !ok {
		cat = catalogues[DefaultLanguage]
	}
	if key < 0 || key >= numKeys {
		return ""
	}
	return cat[key]
}

// Tf formats the string for key in lang with args.
func Tf(lang Language, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
