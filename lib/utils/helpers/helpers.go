package helpers

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFileName keeps the base name of an uploaded file usable as an object key part.
func SafeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
