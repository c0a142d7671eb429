package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alchemmist/tabset/internal/host"
	"github.com/alchemmist/tabset/internal/tabset"
)

// ErrInvalidSnapshot marks a structurally empty record: no tabs, or a
// tab with no panes. Reconstruction rejects it before any mutation.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Options controls the chrome a reconstruction may touch. Both are
// applied only when the target window was recognized as empty.
type Options struct {
	RestoreDimensions bool
	RestoreColors     bool
}

// Reconstructor replays a snapshot into a live window. Partial
// failures (a tab or pane that cannot be created, a command that no
// longer exists) are logged and skipped; a half-restored layout is
// more useful than none.
type Reconstructor struct {
	host     host.Host
	resolver *Resolver
	opts     Options
	log      *slog.Logger
}

func NewReconstructor(h host.Host, resolver *Resolver, opts Options, log *slog.Logger) *Reconstructor {
	if log == nil {
		log = slog.Default()
	}
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Reconstructor{host: h, resolver: resolver, opts: opts, log: log}
}

// createdPane pairs a live pane ID with the record it was built from,
// for the command-replay pass.
type createdPane struct {
	paneID string
	rec    tabset.PaneRecord
}

// Reconstruct drives window/tab/pane creation to approximate snap in
// the given window. Only upfront validation can fail; everything past
// it is best-effort.
func (r *Reconstructor) Reconstruct(ctx context.Context, windowID string, snap tabset.Snapshot) error {
	if len(snap.Tabs) == 0 {
		return ErrInvalidSnapshot
	}
	for _, tab := range snap.Tabs {
		if len(tab.Panes) == 0 {
			return ErrInvalidSnapshot
		}
	}

	if info, err := r.host.InspectWindow(ctx, windowID); err != nil {
		r.log.Warn("inspect window before restore failed", "error", err)
	} else if r.clearIfEmpty(ctx, info) {
		r.restoreChrome(ctx, windowID, snap, info.FullScreen)
	}

	for i, tab := range snap.Tabs {
		if !r.replayTab(ctx, windowID, tab) {
			r.log.Warn("tab creation failed, aborting remaining tabs",
				"tab", tab.Title, "index", i)
			break
		}
	}
	return nil
}

// clearIfEmpty recognizes a window holding nothing but a single idle
// shell and asks that shell to exit so the recorded layout replaces
// it. A lone non-shell pane means the window is in use: it is left
// alone and the layout is appended after it.
func (r *Reconstructor) clearIfEmpty(ctx context.Context, info host.WindowInfo) bool {
	if len(info.Tabs) != 1 || len(info.Tabs[0].Panes) != 1 {
		return false
	}
	pane := info.Tabs[0].Panes[0]
	if !IsShell(pane.Exe) {
		return false
	}
	if err := r.host.SendText(ctx, pane.PaneID, "exit\r"); err != nil {
		r.log.Warn("could not exit idle shell", "pane", pane.PaneID, "error", err)
		return false
	}
	return true
}

// restoreChrome applies recorded dimensions and colors, each behind
// its own option. Never called for a window that was not empty, and
// a full-screen window keeps its size.
func (r *Reconstructor) restoreChrome(ctx context.Context, windowID string, snap tabset.Snapshot, fullScreen bool) {
	if r.opts.RestoreDimensions && !fullScreen && snap.WindowWidth > 0 && snap.WindowHeight > 0 {
		if err := r.host.SetWindowSize(ctx, windowID, snap.WindowWidth, snap.WindowHeight); err != nil {
			r.log.Warn("restore dimensions failed", "error", err)
		}
	}
	if r.opts.RestoreColors && len(snap.Colors) > 0 {
		if err := r.host.SetColorOverrides(ctx, windowID, snap.Colors); err != nil {
			r.log.Warn("restore colors failed", "error", err)
		}
	}
}

// replayTab spawns one tab and its panes. Returns false only when the
// tab itself could not be created, which aborts the remaining tabs;
// pane-level failures skip just that pane.
func (r *Reconstructor) replayTab(ctx context.Context, windowID string, tab tabset.TabRecord) bool {
	first := tab.Panes[0]
	tabID, paneID, err := r.host.SpawnTab(ctx, windowID, tabset.NormalizeCwd(first.Cwd))
	if err != nil {
		r.log.Warn("spawn tab failed", "tab", tab.Title, "error", err)
		return false
	}
	if err := r.host.SetTabTitle(ctx, tabID, tab.Title); err != nil {
		r.log.Warn("set tab title failed", "tab", tab.Title, "error", err)
	}
	// Splits land in the active tab per host semantics.
	if err := r.host.ActivateTab(ctx, tabID); err != nil {
		r.log.Warn("activate tab failed", "tab", tab.Title, "error", err)
	}

	created := []createdPane{{paneID: paneID, rec: first}}
	active := paneID
	prev := first
	for _, rec := range tab.Panes[1:] {
		dir := splitDirection(prev.Left, rec.Left)
		newID, err := r.host.SplitPane(ctx, active, dir, tabset.NormalizeCwd(rec.Cwd))
		if err != nil {
			r.log.Warn("split pane failed", "tab", tab.Title, "direction", dir.String(), "error", err)
			prev = rec
			continue
		}
		created = append(created, createdPane{paneID: newID, rec: rec})
		active = newID
		prev = rec
	}

	for _, cp := range created {
		r.replayCommand(ctx, cp)
	}

	// Keep focus predictable regardless of split order.
	if err := r.host.ActivatePane(ctx, created[0].paneID); err != nil {
		r.log.Warn("activate first pane failed", "tab", tab.Title, "error", err)
	}
	return true
}

// replayCommand types the recorded foreground command into the pane.
// A shell is left at its prompt; a missing executable is skipped.
// This is a best-effort re-launch, not process restore: history,
// environment and in-flight state are gone.
func (r *Reconstructor) replayCommand(ctx context.Context, cp createdPane) {
	if IsShell(cp.rec.Exe) || cp.rec.Exe == "" {
		return
	}
	path, err := r.resolver.Resolve(cp.rec.Exe)
	if err != nil {
		r.log.Debug("skipping unresolvable command", "exe", cp.rec.Exe, "error", err)
		return
	}
	if err := r.host.SendText(ctx, cp.paneID, path+"\r"); err != nil {
		r.log.Warn("send command failed", "pane", cp.paneID, "exe", cp.rec.Exe, "error", err)
	}
}

// splitDirection infers how a pane sits relative to its predecessor
// from their left grid positions: same column means it was stacked
// below, a different column means it sat beside.
func splitDirection(prevLeft, left int) host.SplitDirection {
	if prevLeft == left {
		return host.SplitDown
	}
	return host.SplitRight
}
