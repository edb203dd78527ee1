package utils

import (
	"crypto/sha1"
	"fmt"
	"path/filepath"
	"strings"
)

// ComputeHash calculates the SHA-1 of a fully materialized object.
// format: "<kind> <size>\0<content>"
// The object store streams instead; this is the in-memory reference used to
// cross-check it.
func ComputeHash(content []byte, kind string) string {
	header := fmt.Sprintf("%s %d\x00", kind, len(content))
	data := append([]byte(header), content...)
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// BuildDirPath constructs os-agnostic display directory path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
