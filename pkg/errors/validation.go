package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateAssetPath validates a skin-relative asset path for safety.
// It rejects paths that could escape the skin directory or archive.
//
// The validation rules are intentionally conservative:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "asset path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "asset path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "asset path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "asset path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "asset path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "asset path cannot contain backslashes")
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

// skinNameRegex matches skin names safe to embed in cache keys and URLs.
var skinNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidateSkinName validates a skin's display name from its manifest.
func ValidateSkinName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "skin name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidManifest, "skin name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "skin name contains invalid control characters")
		}
	}

	if !skinNameRegex.MatchString(name) {
		return New(ErrCodeInvalidManifest, "invalid skin name: %q", name)
	}

	return nil
}

// ValidateDimensions validates board dimensions and counter digit counts
// supplied by a user or an HTTP query.
func ValidateDimensions(rows, cols, digits int) error {
	const (
		maxRows   = 256
		maxCols   = 256
		maxDigits = 9
	)
	if rows < 1 || rows > maxRows {
		return New(ErrCodeInvalidDimensions, "rows must be between 1 and %d, got %d", maxRows, rows)
	}
	if cols < 1 || cols > maxCols {
		return New(ErrCodeInvalidDimensions, "cols must be between 1 and %d, got %d", maxCols, cols)
	}
	if digits < 1 || digits > maxDigits {
		return New(ErrCodeInvalidDimensions, "digits must be between 1 and %d, got %d", maxDigits, digits)
	}
	return nil
}
