package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/klauspost/compress/zlib"
)

// hashWriter passes writes through to w and feeds every accepted byte into h.
// Layered above the compressor it observes the canonical, uncompressed bytes.
type hashWriter struct {
	w io.Writer
	h hash.Hash
}

func newHashWriter(w io.Writer) *hashWriter {
	return &hashWriter{
		w: w,
		h: sha1.New(),
	}
}

func (hw *hashWriter) Write(p []byte) (int, error) {
	n, err := hw.w.Write(p)
	hw.h.Write(p[:n])
	return n, err
}

// Sum returns the lowercase hex digest of everything written so far.
func (hw *hashWriter) Sum() string {
	return hex.EncodeToString(hw.h.Sum(nil))
}

// Encode streams the canonical representation of obj through a SHA-1
// accumulator and a zlib compressor whose output goes to dst, in one pass.
// It returns the hex digest. Passing io.Discard computes the hash only.
func Encode(obj Object, dst io.Writer) (string, error) {
	kind := obj.Kind()
	if !kind.IsValid() {
		return "", fmt.Errorf("stream into object: %w: %q", ErrUnsupportedKind, kind)
	}
	size := obj.Size()
	if size < 0 {
		return "", fmt.Errorf("stream into object: negative size %d", size)
	}

	compressor := zlib.NewWriter(dst)
	hw := newHashWriter(compressor)

	if _, err := io.WriteString(hw, header(kind, size)); err != nil {
		return "", fmt.Errorf("stream into object: failed to write header: %w", err)
	}

	src := obj.Reader()
	n, err := io.CopyN(hw, src, size)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("stream into object: source ended after %d of %d bytes", n, size)
		}
		return "", fmt.Errorf("stream into object: %w", err)
	}

	// The header is already committed, so any byte beyond size is an error.
	var probe [1]byte
	if extra, err := src.Read(probe[:]); extra > 0 {
		return "", fmt.Errorf("stream into object: source grew past declared size %d", size)
	} else if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("stream into object: %w", err)
	}

	// Flush the compressor before reading the digest.
	if err := compressor.Close(); err != nil {
		return "", fmt.Errorf("stream into object: failed to flush compressor: %w", err)
	}

	return hw.Sum(), nil
}

// HashObject computes the object hash without persisting anything.
func HashObject(obj Object) (string, error) {
	return Encode(obj, io.Discard)
}
