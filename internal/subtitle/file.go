package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConvertFile converts the SRT file at src and writes the result to dst,
// or to the name derived from src when dst is empty. It returns the path
// that was written.
func ConvertFile(src, dst string, c Converter) (string, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read SRT file: %w", err)
	}

	vtt, err := c.Convert(string(content))
	if err != nil {
		return "", err
	}

	if dst == "" {
		dst, err = c.Destination(src)
		if err != nil {
			return "", err
		}
	}

	if err := ensureDir(dst); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(vtt), 0644); err != nil {
		return "", fmt.Errorf("failed to write VTT file: %w", err)
	}

	return dst, nil
}

// Destination derives the VTT name for src, checking the suffix when
// StrictExtension is set.
func (c Converter) Destination(src string) (string, error) {
	if c.StrictExtension {
		return StrictVTTFilename(src)
	}
	return VTTFilename(src)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
