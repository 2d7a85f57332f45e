package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/passcheck/passcheck-go/internal/config"
	"github.com/passcheck/passcheck-go/internal/logger"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var availableOutputs = []string{outputText, outputJSON}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.New()
	syncLogger := func() {}

	cmd := &cobra.Command{
		Use:           "passcheck",
		Short:         "Password strength checker and generator",
		Long:          "Scores passwords against a fixed set of rules and generates random strong passwords, over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()

			sync, err := logger.Setup(v.GetString(config.KeyEnv), v.GetString(config.KeyLogLevel))
			if err != nil {
				return err
			}
			syncLogger = sync

			if envErr != nil {
				slog.Debug("no .env file found, using environment variables")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			syncLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(config.KeyLogLevel, "l", "info", "Sets the log level (one of [debug, info, warn, error])")
	flags.String(config.KeyEnv, config.EnvDevelopment, fmt.Sprintf("Sets the environment (one of [%s, %s])", config.EnvDevelopment, config.EnvProduction))
	flags.StringP("output", "o", outputText, fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")))
	flags.IntP(config.KeyPort, "p", 5000, "Port the HTTP server listens on")
	bindFlags(v, cmd)

	cmd.AddCommand(newServeCommand(v))
	cmd.AddCommand(newCheckCommand(v))
	cmd.AddCommand(newGenerateCommand(v))

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}
}
