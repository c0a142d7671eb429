// Package wezterm implements host.Host on top of the `wezterm cli`
// subcommands. Each capability is one exec; nothing is cached between
// calls so the adapter always reflects live window state.
package wezterm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/alchemmist/tabset/internal/host"
)

var ErrNoWindows = errors.New("wezterm reports no windows")

type Client struct {
	bin string
	log *slog.Logger
}

func NewClient(bin string, log *slog.Logger) *Client {
	if strings.TrimSpace(bin) == "" {
		bin = "wezterm"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{bin: bin, log: log}
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, append([]string{"cli"}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("wezterm cli %s: %w (%s)", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// paneEntry is one row of `wezterm cli list --format json`.
type paneEntry struct {
	WindowID int    `json:"window_id"`
	TabID    int    `json:"tab_id"`
	PaneID   int    `json:"pane_id"`
	Title    string `json:"title"`
	CWD      string `json:"cwd"`
	LeftCol  int    `json:"left_col"`
	TopRow   int    `json:"top_row"`
	TabTitle string `json:"tab_title"`
	TTYName  string `json:"tty_name"`
	IsActive bool   `json:"is_active"`
	Size     struct {
		PixelWidth  int `json:"pixel_width"`
		PixelHeight int `json:"pixel_height"`
	} `json:"size"`
}

func (c *Client) list(ctx context.Context) ([]paneEntry, error) {
	out, err := c.output(ctx, "list", "--format", "json")
	if err != nil {
		return nil, err
	}
	var entries []paneEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return nil, fmt.Errorf("decode wezterm cli list output: %w", err)
	}
	return entries, nil
}

// ActiveWindowID finds the window holding the pane this process runs
// in ($WEZTERM_PANE), falling back to the first listed window.
func (c *Client) ActiveWindowID(ctx context.Context) (string, error) {
	entries, err := c.list(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoWindows
	}
	if v := os.Getenv("WEZTERM_PANE"); v != "" {
		if paneID, err := strconv.Atoi(v); err == nil {
			for _, e := range entries {
				if e.PaneID == paneID {
					return strconv.Itoa(e.WindowID), nil
				}
			}
		}
	}
	return strconv.Itoa(entries[0].WindowID), nil
}

func (c *Client) InspectWindow(ctx context.Context, windowID string) (host.WindowInfo, error) {
	var info host.WindowInfo
	wid, err := strconv.Atoi(windowID)
	if err != nil {
		return info, fmt.Errorf("bad window id %q: %w", windowID, err)
	}
	entries, err := c.list(ctx)
	if err != nil {
		return info, err
	}

	tabIdx := map[int]int{}
	for _, e := range entries {
		if e.WindowID != wid {
			continue
		}
		// The CLI reports per-pane sizes only; the largest pane extent
		// is the closest available stand-in for the window size.
		if e.Size.PixelWidth > info.PixelWidth {
			info.PixelWidth = e.Size.PixelWidth
		}
		if e.Size.PixelHeight > info.PixelHeight {
			info.PixelHeight = e.Size.PixelHeight
		}

		idx, ok := tabIdx[e.TabID]
		if !ok {
			idx = len(info.Tabs)
			tabIdx[e.TabID] = idx
			info.Tabs = append(info.Tabs, host.TabInfo{
				TabID: strconv.Itoa(e.TabID),
				Title: e.TabTitle,
			})
		}
		info.Tabs[idx].Panes = append(info.Tabs[idx].Panes, host.PaneInfo{
			PaneID: strconv.Itoa(e.PaneID),
			Left:   e.LeftCol,
			Cwd:    e.CWD,
			Exe:    c.foregroundExe(ctx, e),
		})
	}
	if len(info.Tabs) == 0 {
		return info, fmt.Errorf("window %s: %w", windowID, ErrNoWindows)
	}
	return info, nil
}

// foregroundExe names the process attached to a pane. The CLI list
// output carries no process field, so ask ps about the pane's tty and
// fall back to the pane title, which WezTerm defaults to the
// foreground process name.
func (c *Client) foregroundExe(ctx context.Context, e paneEntry) string {
	tty := strings.TrimPrefix(e.TTYName, "/dev/")
	if tty != "" {
		out, err := exec.CommandContext(ctx, "ps", "-o", "comm=", "-t", tty).Output()
		if err == nil {
			lines := splitLines(string(out))
			if len(lines) > 0 {
				// ps lists the shell first and the foreground child last.
				return lines[len(lines)-1]
			}
		}
		c.log.Debug("ps lookup failed, falling back to pane title", "tty", tty, "pane", e.PaneID)
	}
	return strings.TrimSpace(e.Title)
}

// ColorOverrides is not reachable over the CLI surface; the capture
// stores an empty overrides object rather than failing the save.
func (c *Client) ColorOverrides(ctx context.Context, windowID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

func (c *Client) SetColorOverrides(ctx context.Context, windowID string, colors json.RawMessage) error {
	return host.ErrUnsupported
}

func (c *Client) SetWindowSize(ctx context.Context, windowID string, width, height int) error {
	return host.ErrUnsupported
}

func (c *Client) SpawnTab(ctx context.Context, windowID, cwd string) (string, string, error) {
	args := []string{"spawn", "--window-id", windowID}
	if cwd != "" {
		args = append(args, "--cwd", cwd)
	}
	out, err := c.output(ctx, args...)
	if err != nil {
		return "", "", err
	}
	paneID := strings.TrimSpace(out)
	if paneID == "" {
		return "", "", fmt.Errorf("wezterm cli spawn returned no pane id")
	}

	// spawn prints only the new pane id; map it back to its tab.
	entries, err := c.list(ctx)
	if err != nil {
		return "", "", err
	}
	pid, err := strconv.Atoi(paneID)
	if err != nil {
		return "", "", fmt.Errorf("bad pane id %q from spawn: %w", paneID, err)
	}
	for _, e := range entries {
		if e.PaneID == pid {
			return strconv.Itoa(e.TabID), paneID, nil
		}
	}
	return "", "", fmt.Errorf("spawned pane %s not found in window list", paneID)
}

func (c *Client) SetTabTitle(ctx context.Context, tabID, title string) error {
	_, err := c.output(ctx, "set-tab-title", "--tab-id", tabID, title)
	return err
}

func (c *Client) ActivateTab(ctx context.Context, tabID string) error {
	_, err := c.output(ctx, "activate-tab", "--tab-id", tabID)
	return err
}

func (c *Client) ActivatePane(ctx context.Context, paneID string) error {
	_, err := c.output(ctx, "activate-pane", "--pane-id", paneID)
	return err
}

func (c *Client) SplitPane(ctx context.Context, paneID string, dir host.SplitDirection, cwd string) (string, error) {
	args := []string{"split-pane", "--pane-id", paneID}
	if dir == host.SplitDown {
		args = append(args, "--bottom")
	} else {
		args = append(args, "--right")
	}
	if cwd != "" {
		args = append(args, "--cwd", cwd)
	}
	out, err := c.output(ctx, args...)
	if err != nil {
		return "", err
	}
	newID := strings.TrimSpace(out)
	if newID == "" {
		return "", fmt.Errorf("wezterm cli split-pane returned no pane id")
	}
	return newID, nil
}

func (c *Client) SendText(ctx context.Context, paneID, text string) error {
	_, err := c.output(ctx, "send-text", "--pane-id", paneID, "--no-paste", text)
	return err
}

func splitLines(in string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(in, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
