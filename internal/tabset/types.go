package tabset

import "encoding/json"

// Snapshot is the persisted unit: one named record of a window's
// tab/pane layout. Colors is kept opaque so a record round-trips
// byte-for-byte without the engine understanding theme structure.
type Snapshot struct {
	WindowWidth  int             `json:"window_width"`
	WindowHeight int             `json:"window_height"`
	Colors       json.RawMessage `json:"colors"`
	Tabs         []TabRecord     `json:"tabs"`
}

// TabRecord holds one tab's title and its panes in host display
// order. The order is load-bearing: it is replayed verbatim and
// drives split-direction inference.
type TabRecord struct {
	Title string       `json:"title"`
	Panes []PaneRecord `json:"panes"`
}

// PaneRecord describes a single pane. Left is the pane's horizontal
// grid position; it is a geometry hint, not a full rectangle.
type PaneRecord struct {
	Left int    `json:"left"`
	Cwd  string `json:"cwd"`
	Exe  string `json:"exe"`
}

// TabCount and PaneCount summarize a snapshot for listings.
func (s Snapshot) TabCount() int { return len(s.Tabs) }

func (s Snapshot) PaneCount() int {
	n := 0
	for _, t := range s.Tabs {
		n += len(t.Panes)
	}
	return n
}
