package i18n

var french = catalogue{
	KeyAppName:      "Guide d'étude UML",
	KeyTagline:      "Apprenez à lire et dessiner l'UML, un diagramme à la fois.",
	KeyLanguageName: "Français",
	KeyPressAnyKey:  "appuyez sur une touche pour continuer",

	KeyHomeTitle:       "Accueil",
	KeyMenuChapters:    "CHAPITRES",
	KeyMenuQuiz:        "FAIRE LE QUIZ",
	KeyMenuLanguage:    "LANGUE : %s",
	KeyMenuQuit:        "QUITTER",
	KeyReadingProgress: "Lecture",

	KeyHintNavigate:      "Naviguer",
	KeyHintSelect:        "Choisir",
	KeyHintBack:          "Retour",
	KeyHintQuit:          "Quitter",
	KeyHintScroll:        "Défiler",
	KeyHintToggleSection: "Déplier/replier",
	KeyHintDiagram:       "Diagramme",
	KeyHintPrevNext:      "Chapitre préc./suiv.",
	KeyHintChapterQuiz:   "Quiz du chapitre",
	KeyHintAnswer:        "Choisir une réponse",
	KeyHintConfirm:       "Valider",
	KeyHintContinue:      "Continuer",
	KeyHintStart:         "Commencer",
	KeyHintRetry:         "Recommencer",
	KeyHintHome:          "Accueil",

	KeyChaptersTitle:    "Chapitres",
	KeyChapterNumber:    "Chapitre %d",
	KeyChapterRead:      "lu",
	KeyDiagram:          "Diagramme",
	KeySectionCollapsed: "▸",
	KeySectionExpanded:  "▾",

	KeyQuizTitle:         "Quiz",
	KeyQuizChapterTitle:  "Quiz : %s",
	KeyQuizIntro:         "Testez vos connaissances UML avec %d questions.",
	KeyQuizRules:         "Choisissez une réponse avec 1-4 ou les flèches, puis validez avec Entrée.\nChaque question n'est posée qu'une fois, dans l'ordre.",
	KeyQuizQuestionOf:    "Question %d sur %d",
	KeyQuizScore:         "Score : %d",
	KeyQuizSelectFirst:   "Choisissez d'abord une réponse.",
	KeyQuizCorrect:       "Bonne réponse !",
	KeyQuizIncorrect:     "Pas tout à fait.",
	KeyQuizCorrectAnswer: "Bonne réponse : %s",
	KeyQuizNoQuestions:   "Aucune question pour ce thème pour l'instant.",

	KeyResultsTitle:      "Résultats",
	KeyResultsScore:      "Vous avez obtenu %d/%d (%d %%)",
	KeyResultsBreakdown:  "Détail",
	KeyResultsYourAnswer: "votre réponse : %s",
	KeyBandExcellent:     "Excellent ! Vous maîtrisez bien l'UML.",
	KeyBandGood:          "Bon travail. Une petite révision et ce sera acquis.",
	KeyBandAverage:       "Pas mal. Relisez les chapitres qui vous ont posé problème.",
	KeyBandNeedsWork:     "Continuez. Relisez les chapitres et réessayez.",
}
