package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

// replaceFile moves a fully written object into place. Tests swap it to
// inject rename failures.
var replaceFile = atomic.ReplaceFile

// ObjectStore manages loose objects under <repo>/.gogit/objects.
type ObjectStore struct {
	root string // Path to the .gogit directory
}

func NewObjectStore(repoPath string) *ObjectStore {
	return &ObjectStore{
		root: filepath.Join(repoPath, constants.Gogit),
	}
}

// Root returns the store root that object paths are relative to.
func (store *ObjectStore) Root() string {
	return store.root
}

// ObjectPath returns the absolute location of the object named by hash.
func (store *ObjectStore) ObjectPath(hash string) (string, error) {
	relativePath, err := PathFor(hash)
	if err != nil {
		return "", err
	}
	return filepath.Join(store.root, relativePath), nil
}

// Store encodes obj into .gogit/objects/<first 2 chars>/<rest> and returns
// its hash. The object is staged in a private temporary file and moved into
// place only once fully written, so the final path never holds a partial
// object. Storing an object that already exists leaves the existing file
// untouched.
func (store *ObjectStore) Store(obj Object) (hash string, err error) {
	objectsDir := filepath.Join(store.root, constants.Objects)
	if err := os.MkdirAll(objectsDir, constants.DirPerms); err != nil {
		return "", fmt.Errorf("create directory: failed to create %s: %w", objectsDir, err)
	}

	tmpFile, err := os.CreateTemp(objectsDir, constants.TempObjectPattern)
	if err != nil {
		return "", fmt.Errorf("stream into object: failed to create temporary object: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Remove the staging file on every path that does not move it into place.
	placed := false
	defer func() {
		if placed {
			return
		}
		tmpFile.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			slog.Warn("Failed to remove temporary object",
				"path", tmpPath,
				"error", rmErr)
		}
	}()

	hash, err = Encode(obj, tmpFile)
	if err != nil {
		return "", err
	}

	if err := tmpFile.Sync(); err != nil {
		return "", fmt.Errorf("stream into object: failed to sync temporary object: %w", err)
	}
	info, err := tmpFile.Stat()
	if err != nil {
		return "", fmt.Errorf("stream into object: failed to stat temporary object: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("stream into object: failed to close temporary object: %w", err)
	}
	if err := os.Chmod(tmpPath, constants.ObjectPerms); err != nil {
		return "", fmt.Errorf("stream into object: failed to make object read-only: %w", err)
	}

	objectFile, err := store.ObjectPath(hash)
	if err != nil {
		return "", err
	}

	// Another writer may create the same directory concurrently; MkdirAll
	// treats an existing directory as success.
	if err := os.MkdirAll(filepath.Dir(objectFile), constants.DirPerms); err != nil {
		return "", fmt.Errorf("create directory: failed to create object directory: %w", err)
	}

	// Content addressing: an existing file already holds these exact bytes.
	if _, err := os.Stat(objectFile); err == nil {
		slog.Debug("Object with this hash already exists",
			"hash", hash)
		return hash, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("move into place: failed to check %s: %w", objectFile, err)
	}

	if err := replaceFile(tmpPath, objectFile); err != nil {
		return "", fmt.Errorf("move into place: failed to rename object %s: %w", hash, err)
	}
	placed = true

	slog.Debug("Stored object",
		"hash", hash,
		"kind", obj.Kind(),
		"size", humanize.Bytes(uint64(obj.Size())),
		"compressed", humanize.Bytes(uint64(info.Size())))

	return hash, nil
}

// Exists checks if an object exists in storage.
func (store *ObjectStore) Exists(hash string) bool {
	objectFile, err := store.ObjectPath(hash)
	if err != nil {
		return false
	}
	_, err = os.Stat(objectFile)
	return err == nil
}
