package errors

import "unicode"

// ValidateTargetName validates a step's target selector.
//
// Targets are free-form names the host application registers, so the
// rules are intentionally loose:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Whether a target actually exists is a runtime question answered at
// resolution time, never at validation time.
func ValidateTargetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStep, "target cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidStep, "target too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStep, "target contains control characters: %q", name)
		}
	}

	return nil
}
