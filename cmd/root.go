package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/internal/logging"
)

// rootCmd defines the base command for the gogit CLI.
// All plumbing subcommands (init, hash-object, cat-file) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gogit",
	Short: "A content-addressable object store in the style of Git plumbing",
	Long: `GoGit is a simplified Git Implementation developed in GO. It stores file contents
as immutable, zlib-compressed objects addressed by their SHA-1 hash and reads them back
with full integrity validation.`,
	PersistentPreRunE: setupLogging,
}

var logLevelFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log verbosity (debug, info, warn, error); defaults to $GOGIT_LOG_LEVEL or warn")
}

// setupLogging routes library slog output to stderr at the requested level.
func setupLogging(cmd *cobra.Command, _ []string) error {
	return logging.Setup(cmd.ErrOrStderr(), logLevelFlag, os.Getenv(constants.LogLevelEnv))
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
