package errors

import (
	"strings"
	"unicode"
)

// ValidateFileName validates an output file name for safety.
// Charts are always written inside the configured output directory, so the
// name must be a plain basename.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No control characters
//   - No path separators
//   - No hidden files (leading dot)
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "file name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "file name cannot be a hidden file: %q", name)
	}

	return nil
}

// ValidateColumnName validates a column reference from a config file or flag.
func ValidateColumnName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}
	for _, r := range name {
		if r == '\x00' || r == '\n' || r == '\r' {
			return New(ErrCodeInvalidInput, "column name contains invalid characters: %q", name)
		}
	}
	return nil
}
