package subtitle

import (
	"regexp"
	"strings"
	"sync"
)

const (
	vttHeader     = "WEBVTT\r\n\r\n"
	lineSeparator = "\r\n"

	// HH:MM:SS,mmm anywhere in the line; the fraction may be any length
	timestampExpr = `\d{2}:\d{2}:\d{2},\d+`
)

// compiled on first use and shared by every conversion
var timestampPattern = sync.OnceValues(func() (*regexp.Regexp, error) {
	return regexp.Compile(timestampExpr)
})

// Scope selects which commas are rewritten on a timestamp line.
type Scope int

const (
	// every comma on a line that contains a timestamp
	ScopeLine Scope = iota
	// only the comma inside each matched timestamp
	ScopeTimestamp
)

// Converter turns SubRip text into WebVTT text.
type Converter struct {
	Scope Scope
	// require a .srt suffix when deriving the destination name
	StrictExtension bool
}

// Convert rewrites SRT content as VTT using the default converter.
func Convert(src string) (string, error) {
	return Converter{}.Convert(src)
}

// Convert prepends the WEBVTT header, swaps the millisecond delimiter on
// every timestamp line and rejoins all lines with CRLF. Lines without a
// timestamp are copied unchanged; nothing is added, dropped or reordered.
//
// With ScopeLine, all commas on a timestamp line become periods, so cue
// text sharing a line with a timing would be rewritten as well. Standard
// SRT never puts text there; ScopeTimestamp limits the rewrite to the
// matched timestamps.
func (c Converter) Convert(src string) (string, error) {
	re, err := timestampPattern()
	if err != nil {
		return "", &ConversionError{Err: err}
	}

	lines := splitLines(vttHeader + src)
	for i, line := range lines {
		if !re.MatchString(line) {
			continue
		}
		switch c.Scope {
		case ScopeTimestamp:
			lines[i] = re.ReplaceAllStringFunc(line, func(ts string) string {
				return strings.Replace(ts, ",", ".", 1)
			})
		default:
			lines[i] = strings.ReplaceAll(line, ",", ".")
		}
	}

	return strings.Join(lines, lineSeparator), nil
}

// splits on \n, dropping one trailing \r per line; a final newline does
// not start another line
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
