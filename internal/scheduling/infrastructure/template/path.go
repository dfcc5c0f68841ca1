package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for template paths carrying shell metacharacters.
var ErrUnsafePath = errors.New("unsafe template path")

var forbiddenPathChars = []string{";", "&", "|", "$", "`", "<", ">", "\n", "\r"}

// resolvePath cleans a template path, makes it absolute and follows
// symlinks when the file exists.
func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	for _, char := range forbiddenPathChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("%w: forbidden character %q", ErrUnsafePath, char)
		}
	}

	clean, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve template path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(clean)
	if err != nil {
		if os.IsNotExist(err) {
			return clean, nil
		}
		return "", fmt.Errorf("failed to resolve template path: %w", err)
	}
	return resolved, nil
}
