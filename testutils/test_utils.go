package testutils

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithGogitDir creates a temporary directory with .gogit/objects structure.
// This is useful for tests that need the repository structure but not full initialization.
func SetupTestRepoWithGogitDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	gogitDir := filepath.Join(repoPath, constants.Gogit, constants.Objects)

	if err := os.MkdirAll(gogitDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create %s/%s: %v", constants.Gogit, constants.Objects, err)
	}

	return repoPath
}

// SetupTestRepoWithInit creates a fully initialized .gogit repository structure.
// This includes objects/, refs/heads/, refs/tags/, and HEAD file.
func SetupTestRepoWithInit(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	gogitDir := filepath.Join(repoPath, constants.Gogit)

	// Create directory structure
	dirs := []string{
		filepath.Join(gogitDir, constants.Objects),
		filepath.Join(gogitDir, constants.Refs, constants.Heads),
		filepath.Join(gogitDir, constants.Refs, constants.Tags),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, constants.DirPerms); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Create HEAD file
	headPath := filepath.Join(gogitDir, constants.Head)
	headContent := []byte(constants.DefaultRefPrefix + constants.DefaultBranch + "\n")
	if err := os.WriteFile(headPath, headContent, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create %s file: %v", constants.Head, err)
	}

	return repoPath
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// AssertDirExists checks that a directory exists at the given path.
// Fails the test if the directory doesn't exist.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("Failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, but it's a file", path)
	}
}

// ObjectFilePath returns the loose object path for hash inside repoPath.
func ObjectFilePath(repoPath, hash string) string {
	return filepath.Join(repoPath, constants.Gogit, constants.Objects,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
}

// WriteRawObject compresses canonical bytes and writes them at the address of hash,
// bypassing the object store. Used to plant malformed or corrupt objects.
func WriteRawObject(t *testing.T, repoPath, hash string, canonical []byte) string {
	t.Helper()

	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(canonical); err != nil {
		t.Fatalf("Failed to compress raw object: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to flush raw object: %v", err)
	}

	objectPath := ObjectFilePath(repoPath, hash)
	if err := os.MkdirAll(filepath.Dir(objectPath), constants.DirPerms); err != nil {
		t.Fatalf("Failed to create object directory: %v", err)
	}
	if err := os.WriteFile(objectPath, buffer.Bytes(), constants.FilePerms); err != nil {
		t.Fatalf("Failed to write raw object %s: %v", hash, err)
	}

	return objectPath
}

// AssertNoTempObjects checks that no staging files are left in objects/.
func AssertNoTempObjects(t *testing.T, repoPath string) {
	t.Helper()

	pattern := filepath.Join(repoPath, constants.Gogit, constants.Objects, constants.TempObjectPattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("Failed to glob %s: %v", pattern, err)
	}
	if len(matches) > 0 {
		t.Errorf("Expected no temporary objects, found %v", matches)
	}
}

// AssertRepositoryStructure validates complete .gogit directory structure.
// Verifies objects/, refs/heads/, refs/tags/ exist and HEAD contains correct branch reference.
// Fatal error if any validation fails.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gogitDir := filepath.Join(repoPath, constants.Gogit)
	AssertDirExists(t, gogitDir)

	expectedDirs := []string{
		constants.Objects,
		constants.Refs,
		filepath.Join(constants.Refs, constants.Heads),
		filepath.Join(constants.Refs, constants.Tags),
	}
	for _, dir := range expectedDirs {
		AssertDirExists(t, filepath.Join(gogitDir, dir))
	}

	headPath := filepath.Join(gogitDir, constants.Head)
	AssertFileExists(t, headPath)

	content, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("Failed to read %s file: %v", constants.Head, err)
	}

	expectedContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"
	if string(content) != expectedContent {
		t.Errorf("%s content = %q, want %q", constants.Head, content, expectedContent)
	}
}
