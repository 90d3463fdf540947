package trajectory

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// userHomeDir and lookupUser are swapped out in tests.
var (
	userHomeDir = os.UserHomeDir
	lookupUser  = user.Lookup
)

// ExpandPath trims surrounding whitespace from path and expands a leading
// "~" or "~user" to the corresponding home directory. Other paths are
// returned trimmed but otherwise untouched.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest, _ := strings.Cut(path[1:], "/")

	var home string
	if name == "" {
		h, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		home = h
	} else {
		u, err := lookupUser(name)
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		home = u.HomeDir
	}

	return filepath.Join(home, rest), nil
}
