package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/umlstudy/internal/chapters"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start the TUI directly on the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		if err := checkCategory(category); err != nil {
			return err
		}
		return runApp(cmd, true, category)
	},
}

// checkCategory accepts "" or a chapter ID.
func checkCategory(category string) error {
	if category == "" || chapters.Index(category) >= 0 {
		return nil
	}
	return fmt.Errorf("unknown category %q (valid: %s)", category, strings.Join(chapters.IDs(), ", "))
}

func completeCategory(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return chapters.IDs(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	quizCmd.Flags().String("category", "", "Only ask questions about this chapter (e.g. class-diagrams)")
	_ = quizCmd.RegisterFlagCompletionFunc("category", completeCategory)
}
