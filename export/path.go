// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"strings"
)

// SamplePath builds "<stem>_sample_<slot>.<ext>" with the slot number
// zero-padded to at least four digits. slot is 1-based.
func SamplePath(stem string, slot int, ext string) (string, error) {
	if err := validateStem(stem); err != nil {
		return "", err
	}
	if slot < 1 {
		return "", fmt.Errorf("slot %d: %w", slot, ErrInvalidSlot)
	}
	if ext == "" || strings.ContainsAny(ext, "/\\\x00") {
		return "", fmt.Errorf("extension %q: %w", ext, ErrUnknownFormat)
	}

	return fmt.Sprintf("%s_sample_%04d.%s", stem, slot, ext), nil
}

func validateStem(stem string) error {
	if stem == "" {
		return fmt.Errorf("empty stem: %w", ErrInvalidStem)
	}
	if strings.ContainsRune(stem, 0) {
		return fmt.Errorf("stem contains NUL: %w", ErrInvalidStem)
	}
	if strings.HasSuffix(stem, "/") {
		return fmt.Errorf("stem %q names a directory: %w", stem, ErrInvalidStem)
	}
	return nil
}
