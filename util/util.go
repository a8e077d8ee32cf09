package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

const maxFilenameLength = 200

var filenameSeparators = regexp.MustCompile(`[\s-]+`)

// ErrWrap wraps a (value, error) pair into the value itself,
// falling back to the given one in case of error
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

func ErrSuppress(_ error) {
}

// LegalizeFilename strips characters that are illegal on common
// filesystems, collapses whitespace and hyphen runs into a single
// hyphen and caps the result at 200 characters.
func LegalizeFilename(filename string) string {
	legal := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return -1
		}
		return r
	}, filename)
	legal = filenameSeparators.ReplaceAllString(legal, "-")
	legal = strings.Trim(legal, "- ")
	if runes := []rune(legal); len(runes) > maxFilenameLength {
		legal = string(runes[:maxFilenameLength])
	}
	return legal
}

// FileBaseStem returns the file's base name without its extension.
func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Truncate caps a string at the given number of characters.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
