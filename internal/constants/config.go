package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	InitCmdName       = "init"
	HashObjectCmdName = "hash-object"
	CatFileCmdName    = "cat-file"
)

// Repository directory and file names define the gogit metadata structure.
const (
	// Gogit is the repository metadata directory and the object store root.
	Gogit = ".gogit"

	// Objects stores loose content-addressable objects.
	Objects = "objects"

	// Refs contains branch and tag references.
	Refs = "refs"

	// Heads stores branch pointers under refs/.
	Heads = "heads"

	// Tags stores tag pointers under refs/.
	Tags = "tags"

	// Head points to current branch.
	Head = "HEAD"

	// TempObjectPattern names staging files created inside objects/ before
	// they are moved to their content address.
	TempObjectPattern = "tmp_obj_*"
)

// Default repository values.
const (
	// DefaultBranch is the initial branch name for new repositories.
	DefaultBranch = "main"

	// DefaultRefPrefix is prepended to branch names in HEAD file.
	DefaultRefPrefix = "ref: refs/heads/"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644

	// ObjectPerms makes stored objects read-only for everyone (r--r--r--).
	ObjectPerms os.FileMode = 0444
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2
)

// Object format constants.
const (
	// NullByte separates header from content in stored objects.
	NullByte = '\x00'

	// HeaderFieldSeparator splits "<kind> <size>" in object headers.
	HeaderFieldSeparator = " "

	// MaxHeaderLength bounds the header scan. The longest valid header is
	// "commit " followed by a 20 digit size.
	MaxHeaderLength = 64
)

// Logging configuration.
const (
	// LogLevelEnv overrides the default log level when --log-level is not given.
	LogLevelEnv = "GOGIT_LOG_LEVEL"

	// DefaultLogLevel keeps plumbing output clean unless asked otherwise.
	DefaultLogLevel = "warn"
)
