package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsShell(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "bash", want: true},
		{in: "-zsh", want: true},
		{in: "/usr/bin/fish", want: true},
		{in: "vim", want: false},
		{in: "top", want: false},
		{in: "", want: false},
		{in: "bashful", want: false},
	}
	for _, tt := range tests {
		if got := IsShell(tt.in); got != tt.want {
			t.Fatalf("IsShell(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveDirectlyExecutable(t *testing.T) {
	r := NewResolver(fakeFinder{executable: map[string]bool{"/opt/bin/htop": true}})
	got, err := r.Resolve("/opt/bin/htop")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/opt/bin/htop" {
		t.Fatalf("direct path must be returned unchanged, got %q", got)
	}
}

func TestResolveViaSearchPath(t *testing.T) {
	r := NewResolver(fakeFinder{byLookup: map[string]string{"htop": "/usr/bin/htop"}})
	got, err := r.Resolve("htop")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/usr/bin/htop" {
		t.Fatalf("expected PATH hit, got %q", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(fakeFinder{})
	if _, err := r.Resolve("ghost"); !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
	if _, err := r.Resolve(""); !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound for empty command, got %v", err)
	}
}

func TestOSFinder(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
	plain := filepath.Join(dir, "data")
	if err := os.WriteFile(plain, []byte("x"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	var f osFinder
	if !f.IsExecutable(exe) {
		t.Fatalf("expected %s to be executable", exe)
	}
	if f.IsExecutable(plain) {
		t.Fatalf("plain file must not count as executable")
	}
	if f.IsExecutable(dir) {
		t.Fatalf("directory must not count as executable")
	}

	t.Setenv("PATH", dir)
	r := NewResolver(nil)
	got, err := r.Resolve("tool")
	if err != nil {
		t.Fatalf("resolve via real PATH: %v", err)
	}
	if got != exe {
		t.Fatalf("expected %q, got %q", exe, got)
	}
}
