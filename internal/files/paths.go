package files

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirName is the data folder under the user's home directory.
const DefaultDirName = ".lifelog"

// DefaultBasePath returns ~/.lifelog. Overrides come from config.
func DefaultBasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ExpandPath expands $VARS and a leading "~" or "~/" in input.
// "~name" forms are left untouched.
func ExpandPath(input string) (string, error) {
	input = os.ExpandEnv(strings.TrimSpace(input))
	if input != "~" && !strings.HasPrefix(input, "~/") {
		return input, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(input, "~")), nil
}
