package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrCommandNotFound is a recoverable condition: the caller skips
// replaying that one command instead of aborting reconstruction.
var ErrCommandNotFound = errors.New("command not found")

// Finder abstracts the filesystem capabilities the resolver needs.
type Finder interface {
	IsExecutable(path string) bool
	LookPath(name string) (string, error)
}

// Resolver maps a recorded command name or path to something runnable
// on this machine. Best-effort: a command present at capture time may
// be missing or relocated at restore time.
type Resolver struct {
	finder Finder
}

func NewResolver(finder Finder) *Resolver {
	if finder == nil {
		finder = osFinder{}
	}
	return &Resolver{finder: finder}
}

// Resolve returns command unchanged when it is directly executable,
// otherwise falls back to a search-path lookup.
func (r *Resolver) Resolve(command string) (string, error) {
	if command == "" {
		return "", fmt.Errorf("%w: empty command", ErrCommandNotFound)
	}
	if r.finder.IsExecutable(command) {
		return command, nil
	}
	path, err := r.finder.LookPath(command)
	if err != nil || path == "" {
		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
	}
	return path, nil
}

type osFinder struct{}

func (osFinder) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

func (osFinder) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
