package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/internal/repository"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute object hash and optionally store a blob from a file",
	Long: `Compute the object hash (SHA-1 hash) for a file's content.
The file is streamed, never loaded into memory as a whole.
Optionally write the resulting blob object into the objects folder.

Examples:
  # Compute hash without storing
  gogit hash-object myfile.txt

  # Compute hash and store in .gogit/objects
  gogit hash-object -w myfile.txt`,
	SilenceUsage: true,
	Args:         exactArgs(1, "filepath"),
	RunE:         runHashObject,
}

var writeFlag bool

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the object into the objects folder")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int, name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (%s), received %d", cmd.Name(), n, name, len(args))
		}
		return nil
	}
}

// runHashObject streams the file through the encoder, persisting it when -w is set.
// Both modes share objects.Encode, so the printed hash is identical either way.
func runHashObject(cmd *cobra.Command, args []string) error {
	blob, err := objects.NewBlobFromFile(args[0])
	if err != nil {
		return err
	}
	defer blob.Close()

	var hash string
	if writeFlag {
		repoPath, err := repository.FindRoot(".")
		if err != nil {
			return err
		}

		store := objects.NewObjectStore(repoPath)
		if hash, err = store.Store(blob); err != nil {
			return fmt.Errorf("failed to store object: %w", err)
		}
	} else {
		if hash, err = objects.HashObject(blob); err != nil {
			return fmt.Errorf("failed to hash object: %w", err)
		}
	}

	slog.Debug("Hashed object",
		"path", args[0],
		"hash", hash,
		"written", writeFlag)

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
