package subtitle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

var (
	// source name has fewer than four characters to strip
	ErrFilenameTooShort = errors.New("filename too short")
	// source name does not end in .srt (strict derivation only)
	ErrNotSRT = errors.New("filename does not have a .srt extension")
)

// FilenameError reports a destination name that could not be derived.
type FilenameError struct {
	Name string
	Err  error
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("cannot derive vtt filename from %q: %v", e.Name, e.Err)
}

func (e *FilenameError) Unwrap() error {
	return e.Err
}

// ConversionError reports a failure inside the content converter itself,
// never a property of the input text.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}

// reports whether path names a SubRip file
func IsSRT(path string) bool {
	return strings.EqualFold(
		filepath.Ext(path),
		GetExtensionForFormat(FormatSRT),
	)
}
