package cmd

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/testutils"
)

// TestCatFileCommand_PrettyPrint verifies blob payload is written to stdout byte for byte.
func TestCatFileCommand_PrettyPrint(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	content := []byte("hello world\x00with a null byte and no trailing newline")
	hash := storeTestBlob(t, repoPath, content)

	testRootCmd := createTestRootCmd(catFileCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-p", hash})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	if !bytes.Equal(stdout.Bytes(), content) {
		t.Errorf("Expected payload %q, got %q", content, stdout.Bytes())
	}
}

// TestCatFileCommand_Type verifies -t prints the object kind.
func TestCatFileCommand_Type(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	hash := storeTestBlob(t, repoPath, []byte("kind check"))

	testRootCmd := createTestRootCmd(catFileCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-t", hash})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	if got := stdout.String(); got != "blob\n" {
		t.Errorf("Expected kind %q, got %q", "blob\n", got)
	}
}

// TestCatFileCommand_Size verifies -s prints the declared payload size.
func TestCatFileCommand_Size(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	content := bytes.Repeat([]byte("size "), 1000)
	hash := storeTestBlob(t, repoPath, content)

	testRootCmd := createTestRootCmd(catFileCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "--size", hash})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	expected := strconv.Itoa(len(content)) + "\n"
	if got := stdout.String(); got != expected {
		t.Errorf("Expected size %q, got %q", expected, got)
	}
}

// TestCatFileCommand_TreeKindAndSize verifies reserved kinds still answer -t and -s.
func TestCatFileCommand_TreeKindAndSize(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	entry, err := objects.NewTreeEntry(objects.ModeRegularFile, "file.txt", testutils.RandomHash())
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}
	tree, err := objects.NewTree([]objects.TreeEntry{*entry})
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}
	hash, err := objects.NewObjectStore(repoPath).Store(tree)
	if err != nil {
		t.Fatalf("Failed to store tree: %v", err)
	}

	kindCmd := createTestRootCmd(catFileCmd)
	kindOut := captureStdout(kindCmd)
	kindCmd.SetArgs([]string{constants.CatFileCmdName, "-t", hash})
	if err := kindCmd.Execute(); err != nil {
		t.Fatalf("%s -t failed: %v", constants.CatFileCmdName, err)
	}
	if got := kindOut.String(); got != "tree\n" {
		t.Errorf("Expected kind %q, got %q", "tree\n", got)
	}

	sizeCmd := createTestRootCmd(catFileCmd)
	sizeOut := captureStdout(sizeCmd)
	sizeCmd.SetArgs([]string{constants.CatFileCmdName, "-s", hash})
	if err := sizeCmd.Execute(); err != nil {
		t.Fatalf("%s -s failed: %v", constants.CatFileCmdName, err)
	}
	expected := strconv.FormatInt(tree.Size(), 10) + "\n"
	if got := sizeOut.String(); got != expected {
		t.Errorf("Expected size %q, got %q", expected, got)
	}
}

// TestCatFileCommand_PrettyPrintNonBlob verifies pretty-printing a tree is refused.
func TestCatFileCommand_PrettyPrintNonBlob(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	hash := testutils.RandomHash()
	testutils.WriteRawObject(t, repoPath, hash, []byte("tree 0\x00"))

	testRootCmd := createTestRootCmd(catFileCmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-p", hash})
	err := testRootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error when pretty-printing a tree")
	}

	if !errors.Is(err, objects.ErrUnsupportedOperation) {
		t.Errorf("Expected unsupported operation error, got: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no payload output, got %q", stdout.String())
	}
}

// TestCatFileCommand_MissingObject verifies error for a well-formed hash with no object.
func TestCatFileCommand_MissingObject(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testRootCmd := createTestRootCmd(catFileCmd)
	captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-p", testutils.RandomHash()})
	err := testRootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for missing object")
	}

	if !errors.Is(err, objects.ErrObjectNotFound) {
		t.Errorf("Expected object not found error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "failed to read object") {
		t.Errorf("Expected error to contain [failed to read object], got [%s]", err.Error())
	}
}

// TestCatFileCommand_InvalidHash verifies malformed hashes are rejected before touching disk.
func TestCatFileCommand_InvalidHash(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	invalidHashes := []string{
		"abc",
		strings.ToUpper(testutils.RandomHash()),
		"../../../../../../../../../../../../../etc/passwd",
	}

	for _, hash := range invalidHashes {
		testRootCmd := createTestRootCmd(catFileCmd)
		captureStdout(testRootCmd)
		captureStderr(testRootCmd)

		testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-t", hash})
		err := testRootCmd.Execute()
		if !errors.Is(err, objects.ErrInvalidHash) {
			t.Errorf("Hash %q: expected invalid hash error, got: %v", hash, err)
		}
	}
}

// TestCatFileCommand_CorruptSize verifies size validation failure surfaces after streaming.
func TestCatFileCommand_CorruptSize(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	hash := testutils.RandomHash()
	testutils.WriteRawObject(t, repoPath, hash, []byte("blob 10\x00abc"))

	testRootCmd := createTestRootCmd(catFileCmd)
	captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-p", hash})
	err := testRootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for object shorter than its declared size")
	}

	if !errors.Is(err, objects.ErrCorruptObject) {
		t.Errorf("Expected corrupt object error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "validate size") {
		t.Errorf("Expected error to contain [validate size], got [%s]", err.Error())
	}
}

// TestCatFileCommand_ModeFlags verifies exactly one of -p, -t and -s is required.
func TestCatFileCommand_ModeFlags(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	hash := storeTestBlob(t, repoPath, []byte("flags"))

	testCases := map[string][]string{
		"no mode":       {constants.CatFileCmdName, hash},
		"pretty + type": {constants.CatFileCmdName, "-p", "-t", hash},
		"type + size":   {constants.CatFileCmdName, "-t", "-s", hash},
	}

	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			testRootCmd := createTestRootCmd(catFileCmd)
			stdout := captureStdout(testRootCmd)
			captureStderr(testRootCmd)

			testRootCmd.SetArgs(args)
			if err := testRootCmd.Execute(); err == nil {
				t.Fatalf("Expected flag validation error, got output %q", stdout.String())
			}
		})
	}
}

// TestCatFileCommand_NoArguments verifies error when no hash is provided.
func TestCatFileCommand_NoArguments(t *testing.T) {
	testRootCmd := createTestRootCmd(catFileCmd)
	captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-p"})
	err := testRootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error when no arguments provided")
	}

	expectedErrorMessage := constants.CatFileCmdName + " command requires exactly 1 argument (object), received 0"
	if !strings.Contains(err.Error(), expectedErrorMessage) {
		t.Fatalf("Expected error message to contain [%s] but got error message [%s]", expectedErrorMessage, err.Error())
	}
}

// TestCatFileCommand_NotInRepository verifies error outside any repository.
func TestCatFileCommand_NotInRepository(t *testing.T) {
	changeToRepoDir(t, t.TempDir())

	testRootCmd := createTestRootCmd(catFileCmd)
	captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{constants.CatFileCmdName, "-t", testutils.RandomHash()})
	err := testRootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error outside a repository")
	}

	expectedErrorMessage := constants.Gogit + " directory not found"
	if !strings.Contains(err.Error(), expectedErrorMessage) {
		t.Fatalf("Expected error message to contain [%s] but got error message [%s]", expectedErrorMessage, err.Error())
	}
}
