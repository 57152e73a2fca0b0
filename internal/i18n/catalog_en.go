package i18n

var english = catalogue{
	KeyAppName:      "UML Study Guide",
	KeyTagline:      "Learn to read and draw UML, one diagram at a time.",
	KeyLanguageName: "English",
	KeyPressAnyKey:  "press any key to continue",

	KeyHomeTitle:       "Home",
	KeyMenuChapters:    "CHAPTERS",
	KeyMenuQuiz:        "TAKE THE QUIZ",
	KeyMenuLanguage:    "LANGUAGE: %s",
	KeyMenuQuit:        "QUIT",
	KeyReadingProgress: "Reading",

	KeyHintNavigate:      "Navigate",
	KeyHintSelect:        "Select",
	KeyHintBack:          "Back",
	KeyHintQuit:          "Quit",
	KeyHintScroll:        "Scroll",
	KeyHintToggleSection: "Expand/collapse",
	KeyHintDiagram:       "Diagram",
	KeyHintPrevNext:      "Prev/next chapter",
	KeyHintChapterQuiz:   "Chapter quiz",
	KeyHintAnswer:        "Choose answer",
	KeyHintConfirm:       "Confirm",
	KeyHintContinue:      "Continue",
	KeyHintStart:         "Start",
	KeyHintRetry:         "Retry",
	KeyHintHome:          "Home",

	KeyChaptersTitle:    "Chapters",
	KeyChapterNumber:    "Chapter %d",
	KeyChapterRead:      "read",
	KeyDiagram:          "Diagram",
	KeySectionCollapsed: "▸",
	KeySectionExpanded:  "▾",

	KeyQuizTitle:         "Quiz",
	KeyQuizChapterTitle:  "Quiz: %s",
	KeyQuizIntro:         "Test your UML knowledge with %d questions.",
	KeyQuizRules:         "Pick an answer with 1-4 or the arrow keys, then press Enter to confirm it.\nEach question is answered once, in order.",
	KeyQuizQuestionOf:    "Question %d of %d",
	KeyQuizScore:         "Score: %d",
	KeyQuizSelectFirst:   "Select an answer first.",
	KeyQuizCorrect:       "Correct!",
	KeyQuizIncorrect:     "Not quite.",
	KeyQuizCorrectAnswer: "Correct answer: %s",
	KeyQuizNoQuestions:   "There are no questions for this topic yet.",

	KeyResultsTitle:      "Results",
	KeyResultsScore:      "You scored %d/%d (%d%%)",
	KeyResultsBreakdown:  "Breakdown",
	KeyResultsYourAnswer: "your answer: %s",
	KeyBandExcellent:     "Excellent! You have a solid command of UML.",
	KeyBandGood:          "Good work. A quick review will make it stick.",
	KeyBandAverage:       "Not bad. Revisit the chapters you found tricky.",
	KeyBandNeedsWork:     "Keep going. Read the chapters again and retry.",
}
