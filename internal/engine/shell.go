package engine

import (
	"path/filepath"
	"strings"
)

// Shells the clear-if-empty heuristic and command replay recognize.
// Compared by final path component; a leading '-' (login shell
// convention) is stripped first.
var knownShells = map[string]struct{}{
	"bash": {},
	"zsh":  {},
	"fish": {},
	"sh":   {},
	"ksh":  {},
	"tcsh": {},
	"nu":   {},
}

// IsShell reports whether exe names an interactive command shell.
func IsShell(exe string) bool {
	exe = strings.TrimSpace(exe)
	exe = strings.TrimPrefix(exe, "-")
	if exe == "" {
		return false
	}
	_, ok := knownShells[filepath.Base(exe)]
	return ok
}
