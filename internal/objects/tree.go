package objects

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeSymlink     FileMode = "120000" // Symbolic link
	ModeDirectory   FileMode = "040000" // Directory (tree)
	ModeSubmodule   FileMode = "160000" // Git submodule
)

func (m FileMode) IsValid() bool {
	switch m {
	case ModeRegularFile, ModeExecutable, ModeSymlink, ModeDirectory, ModeSubmodule:
		return true
	default:
		return false
	}
}

// TreeEntry names one child object of a tree.
type TreeEntry struct {
	mode FileMode
	name string
	hash string // hex hash of the child object
}

func NewTreeEntry(mode FileMode, name string, hash string) (*TreeEntry, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid file mode: %s", mode)
	}
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return nil, fmt.Errorf("invalid entry name: %q", name)
	}
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	return &TreeEntry{
		mode: mode,
		name: name,
		hash: hash,
	}, nil
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) Hash() string {
	return e.hash
}

func (e *TreeEntry) IsDirectory() bool {
	return e.mode == ModeDirectory
}

// Tree is a directory listing payload. Its entries are kept in canonical
// order so equal listings always encode to the same bytes.
type Tree struct {
	entries []TreeEntry
	content []byte
}

// NewTree sorts a copy of treeEntries and serializes it.
func NewTree(treeEntries []TreeEntry) (*Tree, error) {
	entries := make([]TreeEntry, len(treeEntries))
	copy(entries, treeEntries)

	slices.SortStableFunc(entries, compareTreeEntries)

	content, err := buildTreeContent(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree content: %w", err)
	}

	return &Tree{
		entries: entries,
		content: content,
	}, nil
}

// compareTreeEntries orders entries by name, treating directory names as if
// they had a trailing "/".
func compareTreeEntries(a, b TreeEntry) int {
	return strings.Compare(sortableName(a), sortableName(b))
}

func sortableName(entry TreeEntry) string {
	if entry.IsDirectory() {
		return entry.Name() + "/"
	}
	return entry.Name()
}

// buildTreeContent writes one record per entry:
// <mode> <name>\0<20-byte binary SHA>
func buildTreeContent(entries []TreeEntry) ([]byte, error) {
	var buf bytes.Buffer

	for _, entry := range entries {
		hashBytes, err := hex.DecodeString(entry.Hash())
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.Name(), err)
		}

		buf.WriteString(string(entry.Mode()))
		buf.WriteByte(' ')
		buf.WriteString(entry.Name())
		buf.WriteByte(constants.NullByte)
		buf.Write(hashBytes)
	}

	return buf.Bytes(), nil
}

func (t *Tree) Kind() Kind {
	return KindTree
}

func (t *Tree) Size() int64 {
	return int64(len(t.content))
}

func (t *Tree) Reader() io.Reader {
	return bytes.NewReader(t.content)
}

// Entries returns all tree entries in canonical order.
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// FindEntry finds an entry by name.
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for _, entry := range t.entries {
		if entry.Name() == name {
			return &entry, true
		}
	}
	return nil, false
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{entries: %d, size: %d bytes}", len(t.entries), len(t.content))
}
