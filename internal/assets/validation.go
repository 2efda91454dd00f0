package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds style and template names. Real names are short
// words like "classic"; anything longer is a mistake.
const maxAssetNameLength = 100

// ValidateAssetName checks that an asset name is safe to use as a file name
// under the asset directories. Separators and dots are rejected so a name
// can neither traverse directories nor smuggle in a different extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
