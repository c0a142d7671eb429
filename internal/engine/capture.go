package engine

import (
	"context"
	"fmt"

	"github.com/alchemmist/tabset/internal/host"
	"github.com/alchemmist/tabset/internal/tabset"
)

// Capture reads the live window and produces an immutable snapshot.
// Pure read; the window is never mutated. A failing host is a hard
// stop for the save operation, so errors pass straight through.
func Capture(ctx context.Context, h host.Host, windowID string) (tabset.Snapshot, error) {
	info, err := h.InspectWindow(ctx, windowID)
	if err != nil {
		return tabset.Snapshot{}, fmt.Errorf("inspect window: %w", err)
	}
	colors, err := h.ColorOverrides(ctx, windowID)
	if err != nil {
		return tabset.Snapshot{}, fmt.Errorf("read color overrides: %w", err)
	}

	snap := tabset.Snapshot{
		WindowWidth:  info.PixelWidth,
		WindowHeight: info.PixelHeight,
		Colors:       colors,
		Tabs:         make([]tabset.TabRecord, 0, len(info.Tabs)),
	}
	for _, tab := range info.Tabs {
		rec := tabset.TabRecord{
			Title: tab.Title,
			Panes: make([]tabset.PaneRecord, 0, len(tab.Panes)),
		}
		for _, p := range tab.Panes {
			rec.Panes = append(rec.Panes, tabset.PaneRecord{
				Left: p.Left,
				Cwd:  p.Cwd,
				Exe:  p.Exe,
			})
		}
		snap.Tabs = append(snap.Tabs, rec)
	}
	return snap, nil
}
