package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alchemmist/tabset/internal/host"
)

// fakeHost records every call and hands out deterministic IDs so
// tests can assert on the exact mutation sequence.
type fakeHost struct {
	window host.WindowInfo
	colors json.RawMessage

	calls []string

	nextTab  int
	nextPane int

	failSpawnAfter int // spawn calls beyond this fail (0 = never fail)
	failSplitOn    int // nth split call fails (0 = never fail)
	splitCalls     int
	unsupportedUI  bool // SetWindowSize/SetColorOverrides unsupported
}

func (f *fakeHost) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeHost) InspectWindow(_ context.Context, windowID string) (host.WindowInfo, error) {
	f.record("inspect %s", windowID)
	return f.window, nil
}

func (f *fakeHost) ColorOverrides(_ context.Context, windowID string) (json.RawMessage, error) {
	f.record("colors %s", windowID)
	if f.colors == nil {
		return json.RawMessage(`{}`), nil
	}
	return f.colors, nil
}

func (f *fakeHost) SetColorOverrides(_ context.Context, windowID string, colors json.RawMessage) error {
	if f.unsupportedUI {
		return host.ErrUnsupported
	}
	f.record("set-colors %s %s", windowID, colors)
	return nil
}

func (f *fakeHost) SetWindowSize(_ context.Context, windowID string, w, h int) error {
	if f.unsupportedUI {
		return host.ErrUnsupported
	}
	f.record("set-size %s %dx%d", windowID, w, h)
	return nil
}

func (f *fakeHost) SpawnTab(_ context.Context, windowID, cwd string) (string, string, error) {
	if f.failSpawnAfter > 0 && f.nextTab >= f.failSpawnAfter {
		f.record("spawn-tab %s %s FAIL", windowID, cwd)
		return "", "", errors.New("spawn refused")
	}
	f.nextTab++
	f.nextPane++
	tabID := fmt.Sprintf("t%d", f.nextTab)
	paneID := fmt.Sprintf("p%d", f.nextPane)
	f.record("spawn-tab %s %s -> %s/%s", windowID, cwd, tabID, paneID)
	return tabID, paneID, nil
}

func (f *fakeHost) SetTabTitle(_ context.Context, tabID, title string) error {
	f.record("set-title %s %q", tabID, title)
	return nil
}

func (f *fakeHost) ActivateTab(_ context.Context, tabID string) error {
	f.record("activate-tab %s", tabID)
	return nil
}

func (f *fakeHost) ActivatePane(_ context.Context, paneID string) error {
	f.record("activate-pane %s", paneID)
	return nil
}

func (f *fakeHost) SplitPane(_ context.Context, paneID string, dir host.SplitDirection, cwd string) (string, error) {
	f.splitCalls++
	if f.failSplitOn > 0 && f.splitCalls == f.failSplitOn {
		f.record("split %s %s %s FAIL", paneID, dir, cwd)
		return "", errors.New("split refused")
	}
	f.nextPane++
	newID := fmt.Sprintf("p%d", f.nextPane)
	f.record("split %s %s %s -> %s", paneID, dir, cwd, newID)
	return newID, nil
}

func (f *fakeHost) SendText(_ context.Context, paneID, text string) error {
	f.record("send %s %q", paneID, text)
	return nil
}

// fakeFinder resolves only the commands listed in byLookup/executable.
type fakeFinder struct {
	executable map[string]bool
	byLookup   map[string]string
}

func (f fakeFinder) IsExecutable(path string) bool { return f.executable[path] }

func (f fakeFinder) LookPath(name string) (string, error) {
	if p, ok := f.byLookup[name]; ok {
		return p, nil
	}
	return "", errors.New("not in PATH")
}

func singleShellWindow(exe string) host.WindowInfo {
	return host.WindowInfo{
		PixelWidth:  800,
		PixelHeight: 600,
		Tabs: []host.TabInfo{
			{TabID: "t0", Title: "existing", Panes: []host.PaneInfo{
				{PaneID: "p0", Left: 0, Cwd: "/home/u", Exe: exe},
			}},
		},
	}
}
