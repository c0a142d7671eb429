package tabset

import (
	"net/url"
	"strings"
)

// NormalizeCwd turns a recorded working directory into a plain
// filesystem path. WezTerm reports pane cwds as file URIs of the form
// "file://hostname/abs/path"; plain paths pass through unchanged.
// Pure function, no platform probing.
func NormalizeCwd(cwd string) string {
	cwd = strings.TrimSpace(cwd)
	if cwd == "" {
		return ""
	}
	if !strings.HasPrefix(cwd, "file://") {
		return cwd
	}
	u, err := url.Parse(cwd)
	if err != nil || u.Path == "" {
		// Malformed URI: strip the scheme and any authority by hand.
		rest := strings.TrimPrefix(cwd, "file://")
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return rest[i:]
		}
		return rest
	}
	return u.Path
}
