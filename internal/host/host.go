// Package host defines the narrow capability interface the engine
// needs from the surrounding terminal application. The engine never
// talks to WezTerm directly; internal/wezterm provides the real
// implementation and tests substitute a recording fake.
package host

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnsupported marks a capability an adapter cannot provide (for
// example window resize over the wezterm CLI surface). Callers treat
// it as a logged skip, never as a hard failure.
var ErrUnsupported = errors.New("host: capability unsupported")

// SplitDirection is the adjacency relationship used when creating a
// new pane relative to its predecessor.
type SplitDirection int

const (
	SplitRight SplitDirection = iota // new pane beside, to the right
	SplitDown                        // new pane below, stacked
)

func (d SplitDirection) String() string {
	if d == SplitDown {
		return "down"
	}
	return "right"
}

// PaneInfo describes one live pane. Exe is the foreground command
// name; Cwd is a path or file URI as reported by the host.
type PaneInfo struct {
	PaneID string
	Left   int
	Cwd    string
	Exe    string
}

// TabInfo describes one live tab. Panes are in host display order.
type TabInfo struct {
	TabID string
	Title string
	Panes []PaneInfo
}

// WindowInfo is a read-only view of a window's current layout.
type WindowInfo struct {
	PixelWidth  int
	PixelHeight int
	FullScreen  bool
	Tabs        []TabInfo
}

// Host is the set of window/tab/pane primitives the engine consumes.
// All mutating calls target the active tab/pane per host semantics,
// addressed by the IDs returned from earlier calls.
type Host interface {
	InspectWindow(ctx context.Context, windowID string) (WindowInfo, error)
	ColorOverrides(ctx context.Context, windowID string) (json.RawMessage, error)
	SetColorOverrides(ctx context.Context, windowID string, colors json.RawMessage) error
	SetWindowSize(ctx context.Context, windowID string, width, height int) error
	SpawnTab(ctx context.Context, windowID, cwd string) (tabID, paneID string, err error)
	SetTabTitle(ctx context.Context, tabID, title string) error
	ActivateTab(ctx context.Context, tabID string) error
	ActivatePane(ctx context.Context, paneID string) error
	SplitPane(ctx context.Context, paneID string, dir SplitDirection, cwd string) (newPaneID string, err error)
	SendText(ctx context.Context, paneID, text string) error
}
