package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the active window layout as a named tabset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		windowID, err := e.client.ActiveWindowID(cmd.Context())
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return e.svc.Save(cmd.Context(), windowID, name)
	},
}

var loadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Replay a saved tabset into the active window",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		windowID, err := e.client.ActiveWindowID(cmd.Context())
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return e.svc.Load(cmd.Context(), windowID, name)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved tabsets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		names, err := e.svc.ListNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved tabset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return e.svc.Delete(cmd.Context(), name)
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename [old] [new]",
	Short: "Rename a saved tabset",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		oldName, newName := "", ""
		if len(args) >= 1 {
			oldName = args[0]
		}
		if len(args) == 2 {
			newName = args[1]
		}
		return e.svc.Rename(cmd.Context(), oldName, newName)
	},
}

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically autosave the active window layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		windowID, err := e.client.ActiveWindowID(ctx)
		if err != nil {
			return err
		}
		return e.svc.Watch(ctx, windowID, watchInterval)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "autosave interval (default from config)")
	rootCmd.AddCommand(saveCmd, loadCmd, listCmd, deleteCmd, renameCmd, watchCmd)
}
