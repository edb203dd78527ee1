package objects

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zlib"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

// ObjectReader is a stored object decoded up to its payload. Reads return
// payload bytes only and stop after ExpectedSize bytes.
type ObjectReader struct {
	Kind         Kind
	ExpectedSize int64

	hash         string
	file         *os.File
	decompressor io.ReadCloser
	stream       *bufio.Reader // decompressed bytes after the header
	payload      io.Reader     // stream limited to ExpectedSize
	hasher       *hashWriter
}

// Load opens the object named by hash and parses its header. The returned
// reader is positioned at the first payload byte and must be closed.
func (store *ObjectStore) Load(hash string) (*ObjectReader, error) {
	objectFile, err := store.ObjectPath(hash)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	file, err := os.Open(objectFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open store file: %w: %s", ErrObjectNotFound, hash)
		}
		return nil, fmt.Errorf("open store file: failed to open object %s: %w", hash, err)
	}

	decompressor, err := zlib.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("open store file: %w: %s is not zlib data: %v", ErrCorruptObject, hash, err)
	}

	object := &ObjectReader{
		hash:         hash,
		file:         file,
		decompressor: decompressor,
		stream:       bufio.NewReader(corruptOnError{decompressor}),
	}

	if err := object.parseHeader(); err != nil {
		object.Close()
		return nil, fmt.Errorf("parse header: object %s: %w", hash, err)
	}

	slog.Debug("Loaded object header",
		"hash", hash,
		"kind", object.Kind,
		"size", humanize.Bytes(uint64(object.ExpectedSize)))

	return object, nil
}

// parseHeader consumes "<kind> <size>\0" from the decompressed stream.
func (o *ObjectReader) parseHeader() error {
	var raw []byte
	for {
		c, err := o.stream.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: no null byte found", ErrMalformedHeader)
			}
			return fmt.Errorf("failed to read header: %w", err)
		}
		if c == constants.NullByte {
			break
		}
		raw = append(raw, c)
		if len(raw) > constants.MaxHeaderLength {
			return fmt.Errorf("%w: no null byte within %d bytes", ErrMalformedHeader, constants.MaxHeaderLength)
		}
	}

	if !utf8.Valid(raw) {
		return fmt.Errorf("%w: header is not valid UTF-8", ErrMalformedHeader)
	}
	text := string(raw)

	fields := strings.Split(text, constants.HeaderFieldSeparator)
	if len(fields) != 2 {
		return fmt.Errorf("%w: expected \"<kind> <size>\", got %q", ErrMalformedHeader, text)
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return err
	}

	sizeText := fields[1]
	if len(sizeText) > 1 && sizeText[0] == '0' {
		return fmt.Errorf("%w: size %q has leading zeros", ErrMalformedHeader, sizeText)
	}
	size, err := strconv.ParseUint(sizeText, 10, 63)
	if err != nil {
		return fmt.Errorf("%w: invalid size %q", ErrMalformedHeader, sizeText)
	}

	o.Kind = kind
	o.ExpectedSize = int64(size)
	o.hasher = newHashWriter(io.Discard)
	if _, err := io.WriteString(o.hasher, header(kind, o.ExpectedSize)); err != nil {
		return fmt.Errorf("failed to hash header: %w", err)
	}
	o.payload = io.TeeReader(io.LimitReader(o.stream, o.ExpectedSize), o.hasher)
	return nil
}

// Read reads payload bytes. It never reads past ExpectedSize.
func (o *ObjectReader) Read(p []byte) (int, error) {
	return o.payload.Read(p)
}

// WriteTo drains the payload into w and then validates it: the number of
// bytes produced must equal ExpectedSize, nothing may follow the payload in
// the decompressed stream, and the content must hash to the requested name.
func (o *ObjectReader) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, o.payload)
	if err != nil {
		return n, fmt.Errorf("read object payload: object %s after %d bytes: %w", o.hash, n, err)
	}

	if err := o.validate(n); err != nil {
		return n, fmt.Errorf("validate size: %w", err)
	}

	return n, nil
}

func (o *ObjectReader) validate(n int64) error {
	if n != o.ExpectedSize {
		return fmt.Errorf("%w: object %s was not the expected size (expected: %d, actual: %d)",
			ErrCorruptObject, o.hash, o.ExpectedSize, n)
	}

	trailing, err := io.Copy(io.Discard, o.stream)
	if err != nil {
		return fmt.Errorf("object %s: failed to read past payload: %w", o.hash, err)
	}
	if trailing > 0 {
		return fmt.Errorf("%w: object %s had %d trailing bytes", ErrCorruptObject, o.hash, trailing)
	}

	if actual := o.hasher.Sum(); actual != o.hash {
		return fmt.Errorf("%w: hash mismatch: expected %s, got %s", ErrCorruptObject, o.hash, actual)
	}

	return nil
}

// corruptOnError marks every decompression failure as ErrCorruptObject, so
// callers can tell a damaged object apart from a failing destination.
type corruptOnError struct {
	r io.Reader
}

func (c corruptOnError) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %w", ErrCorruptObject, err)
	}
	return n, err
}

// Close releases the decompressor and the underlying file.
func (o *ObjectReader) Close() error {
	return errors.Join(o.decompressor.Close(), o.file.Close())
}

// ReadBlob loads a blob by hash and returns its validated content.
func (store *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	object, err := store.Load(hash)
	if err != nil {
		return nil, err
	}
	defer object.Close()

	if object.Kind != KindBlob {
		return nil, fmt.Errorf("%w: object %s is a %s, not a blob", ErrUnsupportedOperation, hash, object.Kind)
	}

	var buffer bytes.Buffer
	if _, err := object.WriteTo(&buffer); err != nil {
		return nil, err
	}

	return NewBlob(buffer.Bytes()), nil
}
