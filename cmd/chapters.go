package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/umlstudy/internal/bank"
	"github.com/abhisek/umlstudy/internal/chapters"
	"github.com/abhisek/umlstudy/internal/i18n"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "Browse the study chapters",
}

var chaptersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := configFrom(cmd.Context()).Language
		questions, err := bank.Load(orDefault(lang))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%3s  %-24s  %-36s  %8s  %9s\n", "#", "ID", "Title", "Sections", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 88))

		for _, ch := range chapters.All() {
			title := ch.Title.In(lang)
			if len([]rune(title)) > 36 {
				title = string([]rune(title)[:33]) + "..."
			}
			fmt.Fprintf(out, "%3d  %-24s  %-36s  %8d  %9d\n",
				ch.Number, ch.ID, title, len(ch.Sections), len(bank.ByCategory(questions, ch.ID)))
		}

		fmt.Fprintf(out, "\n%d chapters\n", chapters.Count())
		return nil
	},
}

var chaptersShowCmd = &cobra.Command{
	Use:               "show <id>",
	Short:             "Print a chapter",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategory,
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := chapters.ByID(args[0])
		if err != nil {
			return fmt.Errorf("%w (valid: %s)", err, strings.Join(chapters.IDs(), ", "))
		}
		lang := orDefault(configFrom(cmd.Context()).Language)
		out := cmd.OutOrStdout()

		title := fmt.Sprintf("%s: %s", i18n.Tf(lang, i18n.KeyChapterNumber, ch.Number), ch.Title.In(lang))
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, strings.Repeat("=", len([]rune(title))))
		fmt.Fprintln(out)
		fmt.Fprintln(out, ch.Summary.In(lang))
		fmt.Fprintln(out)
		if ch.Diagram != "" {
			fmt.Fprintln(out, ch.Diagram)
			fmt.Fprintln(out)
		}
		for i, s := range ch.Sections {
			fmt.Fprintf(out, "%d. %s\n\n%s\n\n", i+1, s.Heading.In(lang), s.Body.In(lang))
		}
		return nil
	},
}

func orDefault(lang i18n.Language) i18n.Language {
	if !lang.Valid() {
		return i18n.DefaultLanguage
	}
	return lang
}

func init() {
	chaptersCmd.AddCommand(chaptersListCmd)
	chaptersCmd.AddCommand(chaptersShowCmd)
}
