package model

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// DefaultHomeToken is substituted with the user's home directory before
// existence checks.
const DefaultHomeToken = "~"

// ExpandHome replaces a leading home token in path with the home directory.
// The token must be the whole path or be followed by a slash. If the home
// directory cannot be resolved the path is returned unchanged.
func ExpandHome(path, token string) string {
	if token == "" || !strings.HasPrefix(path, token) {
		return path
	}
	rest := path[len(token):]
	if rest != "" && !strings.HasPrefix(rest, "/") {
		return path
	}

	home, err := homedir.Dir()
	if err != nil || home == "" {
		return path
	}
	return home + rest
}

// Exists reports whether path names any filesystem object. Every stat error,
// including permission problems and dangling symlinks, counts as missing.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
