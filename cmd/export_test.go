package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/testutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Package-level flag variables and SilenceUsage survive between Execute calls, so they are reset here.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	resetFlags(cmd)
	cmd.SilenceUsage = true

	testRootCmd := &cobra.Command{Use: "gogit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// resetFlags restores every flag of cmd to its default value.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// assertRepositoryStructure verifies .gogit directory structure and HEAD file.
func assertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	testutils.AssertRepositoryStructure(t, repoPath)
}

// storeTestBlob writes content into the repository's object store and returns its hash.
func storeTestBlob(t *testing.T, repoPath string, content []byte) string {
	t.Helper()

	hash, err := objects.NewObjectStore(repoPath).Store(objects.NewBlob(content))
	if err != nil {
		t.Fatalf("Failed to store test blob: %v", err)
	}

	return hash
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}
