package objects

import (
	"testing"
)

// hashOf computes the dry-run hash of obj and fails test on error.
func hashOf(t *testing.T, obj Object) string {
	t.Helper()

	hash, err := HashObject(obj)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	return hash
}

// storeObject persists obj and fails test on error.
func storeObject(t *testing.T, store *ObjectStore, obj Object) string {
	t.Helper()

	hash, err := store.Store(obj)
	if err != nil {
		t.Fatalf("Failed to store %s: %v", obj.Kind(), err)
	}

	return hash
}

// loadObject opens a stored object and closes it when the test ends.
func loadObject(t *testing.T, store *ObjectStore, hash string) *ObjectReader {
	t.Helper()

	object, err := store.Load(hash)
	if err != nil {
		t.Fatalf("Failed to load object %s: %v", hash, err)
	}
	t.Cleanup(func() { object.Close() })

	return object
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != int64(len(expectedContent)) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}
