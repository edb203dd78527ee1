package objects

import "errors"

// Input errors.
var (
	// ErrInvalidHash is returned for anything other than 40 lowercase hex characters.
	ErrInvalidHash = errors.New("invalid object hash")
)

// Storage errors.
var (
	// ErrObjectNotFound is returned when no stored file exists for a hash.
	ErrObjectNotFound = errors.New("object not found")
)

// Integrity errors.
var (
	// ErrMalformedHeader covers headers that are not "<kind> <size>" text.
	ErrMalformedHeader = errors.New("malformed object header")

	// ErrUnsupportedKind is returned for header kinds gogit does not recognize.
	ErrUnsupportedKind = errors.New("unsupported object kind")

	// ErrCorruptObject is returned when the payload disagrees with its header or hash.
	ErrCorruptObject = errors.New("corrupt object")
)

// Unsupported-feature errors.
var (
	// ErrUnsupportedOperation is returned when a recognized kind cannot be
	// handled by the requested operation, e.g. pretty-printing a tree.
	ErrUnsupportedOperation = errors.New("unsupported operation for object kind")
)
