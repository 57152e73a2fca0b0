package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/umlstudy/internal/config"
	"github.com/abhisek/umlstudy/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "umlstudy",
	Short: "Bilingual UML study guide and quiz",
	Long: "umlstudy — a terminal study guide for UML in English and French, " +
		"with illustrated chapters and a multiple-choice quiz.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false, "")
	},
}

// v holds configuration for the current invocation. Flags are bound to it
// in init.
var v = config.NewViper()

var logCloser io.Closer

type configKey struct{}

func Execute() error {
	return executeContext(context.Background())
}

// executeContext runs the command tree and closes the log file opened by
// setup, whether or not the command failed.
func executeContext(ctx context.Context) error {
	defer closeLog()
	return rootCmd.ExecuteContext(ctx)
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("lang", "", "UI language: en, fr, auto, or a locale such as fr_CA.UTF-8")
	pf.String("log-file", "", "Write logs to this file (default $XDG_STATE_HOME/umlstudy/umlstudy.log)")
	pf.String("log-level", "", "Log level: debug, info, warn, error or disabled")
	pf.Bool("no-splash", false, "Skip the welcome animation")
	pf.String("env-file", ".env", "Load environment variables from this file if it exists")

	_ = v.BindPFlag(config.KeyLanguage, pf.Lookup("lang"))
	_ = v.BindPFlag(config.KeyLogFile, pf.Lookup("log-file"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, configuration and the logger, and stores them in the
// command context.
func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	if noSplash, _ := cmd.Flags().GetBool("no-splash"); noSplash {
		v.Set(config.KeyUISplash, false)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	logCloser = closer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.IntoContext(ctx, logger)
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)
	return nil
}

// configFrom returns the configuration stored by setup.
func configFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}
