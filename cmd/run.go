package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/umlstudy/internal/app"
	"github.com/abhisek/umlstudy/internal/appstate"
	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/logging"
)

// runApp loads the bundled content and launches the TUI.
func runApp(cmd *cobra.Command, startQuiz bool, category string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	log := logging.FromContext(ctx)

	banks, err := bank.LoadAll()
	if err != nil {
		log.Error().Err(err).Msg("bundled question bank is invalid")
		return fmt.Errorf("load question banks: %w", err)
	}

	store := appstate.New(cfg.Language)
	store.OnLanguageChange(func(from, to i18n.Language) {
		log.Info().Str("from", string(from)).Str("to", string(to)).Msg("language changed")
	})

	log.Info().
		Str("lang", string(store.Language())).
		Int("bank_en", len(banks[i18n.English])).
		Int("bank_fr", len(banks[i18n.French])).
		Bool("quiz", startQuiz).
		Msg("starting")

	return app.Run(app.Options{
		Store:        store,
		Banks:        banks,
		Logger:       log,
		Splash:       cfg.UI.Splash,
		StartQuiz:    startQuiz,
		QuizCategory: category,
	})
}
