// Package fs provides file-based output for crawl results.
package fs

import (
	"os"
	"path/filepath"
)

// WriteReport writes a JSON document to path, creating parent directories
// as needed. A trailing newline is appended so the file plays well with
// line-oriented tools.
func WriteReport(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return os.WriteFile(path, data, 0644)
}
