package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/internal/repository"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create an empty GoGit repository and object store",
	Long: `The 'init' command creates the .gogit directory in the given or current directory:
the objects/ store, refs/heads, refs/tags and a HEAD pointing at the main branch.
If a repository already exists, the command fails without touching existing data.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

var quietFlag bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print error messages")
}

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runInit executes repository initialization at specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	if !quietFlag {
		cmd.Printf("Initialized empty GoGit repository in %s\n", utils.BuildDirPath(dirPath, constants.Gogit))
	}
	return nil
}
