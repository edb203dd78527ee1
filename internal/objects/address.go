package objects

import (
	"fmt"
	"path/filepath"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

// ValidateHash checks that hash is a textual SHA-1 digest: exactly 40
// lowercase hex characters.
func ValidateHash(hash string) error {
	if len(hash) != constants.HashStringLength {
		return fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidHash, hash, len(hash), constants.HashStringLength)
	}

	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if !('0' <= c && c <= '9') && !('a' <= c && c <= 'f') {
			return fmt.Errorf("%w: %q contains %q at position %d", ErrInvalidHash, hash, c, i)
		}
	}

	return nil
}

// PathFor maps a hash to its location relative to the store root:
// objects/<first 2 chars>/<remaining 38 chars>.
func PathFor(hash string) (string, error) {
	if err := ValidateHash(hash); err != nil {
		return "", err
	}

	prefix := constants.HashDirPrefixLength
	return filepath.Join(constants.Objects, hash[:prefix], hash[prefix:]), nil
}
