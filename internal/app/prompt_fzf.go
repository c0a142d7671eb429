package app

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// FZFPrompter shells out to fzf for selection; free-text prompts fall
// back to the built-in TUI since fzf has no input mode. A non-zero
// fzf exit (dismissal) is a clean cancellation, not an error.
type FZFPrompter struct {
	tui TUIPrompter
}

func (f FZFPrompter) Select(title string, options []string) (string, bool, error) {
	var input bytes.Buffer
	for _, name := range options {
		input.WriteString(name)
		input.WriteByte('\n')
	}

	cmd := exec.Command("fzf", "--prompt", title+"> ", "--height", "100%", "--layout", "reverse")
	cmd.Stdin = &input
	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run fzf: %w", err)
	}

	selected := strings.TrimSpace(string(out))
	if selected == "" {
		return "", false, nil
	}
	return selected, true, nil
}

func (f FZFPrompter) Input(title, placeholder string) (string, bool, error) {
	return f.tui.Input(title, placeholder)
}

// NewPrompter picks the selection backend from configuration.
func NewPrompter(fuzzy bool) Prompter {
	if fuzzy {
		return FZFPrompter{}
	}
	return TUIPrompter{}
}
