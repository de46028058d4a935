package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitlab.com/learnhub-grader.net/internal/global/logger"
)

type rootArgs struct {
	EnvFile  string
	LogLevel string
}

var globalArgs rootArgs

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gradectl",
	Short: "Grade code submissions from the command line",
	Long: `gradectl runs the grading pipeline locally: it sends a source file to the
execution backend, grades the output and prints the submission response as JSON.

Backend settings come from the same JUDGE0_* variables as the server and can be
overridden with flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalArgs.EnvFile != "" {
			if err := godotenv.Load(globalArgs.EnvFile); err != nil {
				return err
			}
		}
		logger.Init(globalArgs.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalArgs.EnvFile, "env", "", "dotenv file to load before reading configuration")
	rootCmd.PersistentFlags().StringVar(&globalArgs.LogLevel, "log-level", "error", "log level")
}
