package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Append writes url to the inbox at path as a single line, creating the file
// and its directory when missing.
func Append(path, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("append inbox: empty url")
	}
	if strings.ContainsAny(url, "\r\n") {
		return fmt.Errorf("append inbox: url %q spans lines", url)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("append inbox: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append inbox: %w", err)
	}
	if _, err := f.WriteString(url + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append inbox: %w", err)
	}
	return f.Close()
}
