package objects

import (
	"fmt"
	"io"
)

// Object represents anything gogit can encode into the store.
// The payload length must be known before encoding starts because the
// header declaring it precedes the payload bytes.
type Object interface {
	// Kind returns the type tag written into the header.
	Kind() Kind

	// Size returns the exact number of payload bytes Reader will yield.
	Size() int64

	// Reader returns the payload stream. It is consumed once per encode.
	Reader() io.Reader
}

// header renders the canonical "<kind> <size>\0" prefix.
func header(kind Kind, size int64) string {
	return fmt.Sprintf("%s %d\x00", kind, size)
}
