package objects

import "fmt"

// Kind is the type tag written at the start of every object header.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
)

// IsValid reports whether k is one of the recognized object kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindBlob, KindTree, KindCommit:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a header token to its Kind. Unrecognized tokens are an
// error and never fall back to blob.
func ParseKind(name string) (Kind, error) {
	kind := Kind(name)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}
	return kind, nil
}
