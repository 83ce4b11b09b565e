package subtitle

import (
	"strings"
	"unicode/utf8"
)

const extensionLen = 4

// VTTFilename drops the last four characters of name and appends .vtt.
// The dropped suffix is assumed, not checked, to be .srt.
func VTTFilename(name string) (string, error) {
	runes := []rune(name)
	if len(runes) < extensionLen {
		return "", &FilenameError{Name: name, Err: ErrFilenameTooShort}
	}
	return string(runes[:len(runes)-extensionLen]) +
		GetExtensionForFormat(FormatVTT), nil
}

// StrictVTTFilename is VTTFilename for names that end in .srt, in any case.
func StrictVTTFilename(name string) (string, error) {
	if utf8.RuneCountInString(name) < extensionLen {
		return "", &FilenameError{Name: name, Err: ErrFilenameTooShort}
	}
	// .srt is ASCII, so a byte slice is enough to compare it
	if !strings.EqualFold(
		name[len(name)-extensionLen:],
		GetExtensionForFormat(FormatSRT),
	) {
		return "", &FilenameError{Name: name, Err: ErrNotSRT}
	}
	return VTTFilename(name)
}
