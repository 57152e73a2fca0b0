package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/i18n"
	"github.com/abhisek/umlstudy/internal/logging"
	"github.com/abhisek/umlstudy/internal/quiz"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions of the bundled bank for the current language",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		if err := checkCategory(category); err != nil {
			return err
		}
		lang := orDefault(configFrom(cmd.Context()).Language)
		questions, err := bank.Load(lang)
		if err != nil {
			return err
		}
		if category != "" {
			questions = bank.ByCategory(questions, category)
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%4s  %-24s  %-56s  %s\n", "ID", "Category", "Prompt", "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, q := range questions {
			fmt.Fprintf(out, "%4d  %-24s  %-56s  %d\n",
				q.ID, q.Category, truncate(q.Prompt, 56), q.CorrectOptionIndex+1)
		}

		fmt.Fprintf(out, "\n%d questions (%s)\n", len(questions), lang)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate question bank files, or the bundled banks when none are given",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.FromContext(cmd.Context())
		out := cmd.OutOrStdout()

		type source struct {
			name string
			load func() ([]quiz.Question, error)
		}
		var sources []source
		if len(args) == 0 {
			for _, lang := range i18n.Languages() {
				sources = append(sources, source{"bundled:" + string(lang), func() ([]quiz.Question, error) {
					return bank.Load(lang)
				}})
			}
		}
		for _, path := range args {
			sources = append(sources, source{path, func() ([]quiz.Question, error) {
				return bank.LoadFile(path)
			}})
		}

		failed := 0
		for _, src := range sources {
			questions, err := src.load()
			if err != nil {
				failed++
				log.Warn().Err(err).Str("bank", src.name).Msg("bank validation failed")
				fmt.Fprintf(out, "FAIL  %s\n", src.name)
				var verr *bank.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						fmt.Fprintf(out, "      %s\n", p)
					}
				} else {
					fmt.Fprintf(out, "      %v\n", err)
				}
				continue
			}
			fmt.Fprintf(out, "ok    %s (%d questions, %d categories)\n",
				src.name, len(questions), len(bank.Categories(questions)))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d banks failed validation", failed, len(sources))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	bankListCmd.Flags().String("category", "", "Only list questions about this chapter")
	_ = bankListCmd.RegisterFlagCompletionFunc("category", completeCategory)

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
