// Package cli wires the tabset commands to the service. Each command
// resolves the active WezTerm window and runs exactly one operation.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alchemmist/tabset/internal/app"
	"github.com/alchemmist/tabset/internal/config"
	"github.com/alchemmist/tabset/internal/wezterm"
)

var (
	flagTabsetsDir string
	flagWeztermBin string
	flagFuzzy      bool
	flagRestoreDim bool
	flagRestoreCol bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "tabset",
	Short:         "Save and restore WezTerm tab/pane layouts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTabsetsDir, "tabsets-dir", "", "directory holding tabset records")
	pf.StringVar(&flagWeztermBin, "wezterm-bin", "", "wezterm binary")
	pf.BoolVar(&flagFuzzy, "fzf", false, "use fzf for selection prompts")
	pf.BoolVar(&flagRestoreDim, "restore-dimensions", false, "restore window dimensions into an empty window")
	pf.BoolVar(&flagRestoreCol, "restore-colors", false, "restore color overrides into an empty window")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log skipped panes and commands")
}

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tabset: %v\n", err)
		os.Exit(1)
	}
}

// env carries the assembled collaborators for one command invocation.
type env struct {
	svc    *app.Service
	client *wezterm.Client
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagTabsetsDir != "" {
		cfg.TabsetsDir = flagTabsetsDir
	}
	if flagWeztermBin != "" {
		cfg.WeztermBin = flagWeztermBin
	}
	if cmd.Flags().Changed("fzf") {
		cfg.FuzzySelector = flagFuzzy
	}
	if cmd.Flags().Changed("restore-dimensions") {
		cfg.RestoreDimensions = flagRestoreDim
	}
	if cmd.Flags().Changed("restore-colors") {
		cfg.RestoreColors = flagRestoreCol
	}

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := wezterm.NewClient(cfg.WeztermBin, log)
	notifier := app.WriterNotifier{Out: cmd.OutOrStdout()}
	prompter := app.NewPrompter(cfg.FuzzySelector)
	return &env{
		svc:    app.New(cfg, client, notifier, prompter, log),
		client: client,
	}, nil
}
