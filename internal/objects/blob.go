package objects

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Blob is a raw byte payload, either held in memory or backed by a file.
type Blob struct {
	content []byte
	file    *os.File
	size    int64
}

// NewBlob wraps in-memory content.
func NewBlob(content []byte) *Blob {
	return &Blob{
		content: content,
		size:    int64(len(content)),
	}
}

// NewBlobFromFile opens filepath and records its size without reading it.
// The caller must Close the blob once it has been encoded.
func NewBlobFromFile(filepath string) (*Blob, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("open input: failed to read file %s: %w", filepath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open input: failed to stat file %s: %w", filepath, err)
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, fmt.Errorf("open input: %s is not a regular file", filepath)
	}

	return &Blob{
		file: file,
		size: info.Size(),
	}, nil
}

func (b *Blob) Kind() Kind {
	return KindBlob
}

func (b *Blob) Size() int64 {
	return b.size
}

// Reader returns a fresh stream over the payload on every call, so the same
// blob can be hashed and stored.
func (b *Blob) Reader() io.Reader {
	if b.file != nil {
		// One extra byte lets the encoder notice a file that grew after Stat.
		return io.NewSectionReader(b.file, 0, b.size+1)
	}
	return bytes.NewReader(b.content)
}

// Content returns the in-memory payload, or nil for a file-backed blob.
func (b *Blob) Content() []byte {
	return b.content
}

// Close releases the backing file, if any.
func (b *Blob) Close() error {
	if b.file == nil {
		return nil
	}
	return b.file.Close()
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{size: %d bytes}", b.size)
}
