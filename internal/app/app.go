// Package app composes store, engine and host into the user-facing
// tabset operations. Every operation performs at most one store
// mutation and reports its outcome through the Notifier.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alchemmist/tabset/internal/config"
	"github.com/alchemmist/tabset/internal/engine"
	"github.com/alchemmist/tabset/internal/host"
	"github.com/alchemmist/tabset/internal/store"
	"github.com/alchemmist/tabset/internal/tabset"
)

// Notifier delivers user-visible outcome messages. Delivery is an
// external concern; the service only decides the wording.
type Notifier interface {
	Notify(summary, body string)
}

// Prompter asks the user to pick a name or type one. ok is false when
// the prompt was dismissed, which aborts the operation as a no-op.
type Prompter interface {
	Select(title string, options []string) (choice string, ok bool, err error)
	Input(title, placeholder string) (value string, ok bool, err error)
}

type Service struct {
	cfg      config.Config
	store    *store.Store
	host     host.Host
	rec      *engine.Reconstructor
	notifier Notifier
	prompter Prompter
	log      *slog.Logger
}

func New(cfg config.Config, h host.Host, notifier Notifier, prompter Prompter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	opts := engine.Options{
		RestoreDimensions: cfg.RestoreDimensions,
		RestoreColors:     cfg.RestoreColors,
	}
	return &Service{
		cfg:      cfg,
		store:    store.New(cfg.TabsetsDir),
		host:     h,
		rec:      engine.NewReconstructor(h, engine.NewResolver(nil), opts, log),
		notifier: notifier,
		prompter: prompter,
		log:      log,
	}
}

// Save captures the window layout and stores it under name. An empty
// name prompts for one; a dismissed prompt is a silent no-op.
func (s *Service) Save(ctx context.Context, windowID, name string) error {
	if name == "" {
		var ok bool
		var err error
		name, ok, err = s.prompter.Input("Save tabset as", "name")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if !tabset.ValidName(name) {
		s.notifier.Notify("Tabset not saved", fmt.Sprintf("invalid name %q", name))
		return fmt.Errorf("invalid tabset name %q", name)
	}

	snap, err := engine.Capture(ctx, s.host, windowID)
	if err != nil {
		s.notifier.Notify("Tabset not saved", err.Error())
		return err
	}
	if err := s.store.Save(snap, name); err != nil {
		s.notifier.Notify("Tabset not saved", err.Error())
		return err
	}
	s.notifier.Notify("Tabset saved", fmt.Sprintf("%q: %d tabs, %d panes", name, snap.TabCount(), snap.PaneCount()))
	return nil
}

// Load reads the named record and replays it into the window. An
// empty name opens the selection prompt. Partial reconstruction is
// still reported as success; only a structurally empty record fails.
func (s *Service) Load(ctx context.Context, windowID, name string) error {
	name, ok, err := s.resolveName(name, "Load tabset")
	if err != nil || !ok {
		return err
	}

	snap, err := s.store.Load(name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			s.notifier.Notify("Tabset not loaded", fmt.Sprintf("no tabset named %q", name))
		case errors.Is(err, store.ErrCorrupt):
			s.notifier.Notify("Tabset not loaded", fmt.Sprintf("%q could not be parsed", name))
		default:
			s.notifier.Notify("Tabset not loaded", err.Error())
		}
		return err
	}

	if err := s.rec.Reconstruct(ctx, windowID, snap); err != nil {
		s.notifier.Notify("Tabset not loaded", fmt.Sprintf("%q is empty or malformed", name))
		return err
	}
	s.notifier.Notify("Tabset loaded", fmt.Sprintf("%q: %d tabs, %d panes", name, snap.TabCount(), snap.PaneCount()))
	return nil
}

// Delete removes one stored record, chosen interactively when name is
// empty.
func (s *Service) Delete(ctx context.Context, name string) error {
	name, ok, err := s.resolveName(name, "Delete tabset")
	if err != nil || !ok {
		return err
	}
	if err := s.store.Delete(name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.notifier.Notify("Tabset not deleted", fmt.Sprintf("no tabset named %q", name))
		} else {
			s.notifier.Notify("Tabset not deleted", err.Error())
		}
		return err
	}
	s.notifier.Notify("Tabset deleted", fmt.Sprintf("%q removed", name))
	return nil
}

// Rename moves a record to a new name, prompting for whichever side
// was not given. Never overwrites an existing destination.
func (s *Service) Rename(ctx context.Context, oldName, newName string) error {
	oldName, ok, err := s.resolveName(oldName, "Rename tabset")
	if err != nil || !ok {
		return err
	}
	if newName == "" {
		newName, ok, err = s.prompter.Input(fmt.Sprintf("Rename %q to", oldName), "new name")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if !tabset.ValidName(newName) {
		s.notifier.Notify("Tabset not renamed", fmt.Sprintf("invalid name %q", newName))
		return fmt.Errorf("invalid tabset name %q", newName)
	}

	if err := s.store.Rename(oldName, newName); err != nil {
		switch {
		case errors.Is(err, store.ErrExists):
			s.notifier.Notify("Tabset not renamed", fmt.Sprintf("%q already exists", newName))
		case errors.Is(err, store.ErrNotFound):
			s.notifier.Notify("Tabset not renamed", fmt.Sprintf("no tabset named %q", oldName))
		default:
			s.notifier.Notify("Tabset not renamed", err.Error())
		}
		return err
	}
	s.notifier.Notify("Tabset renamed", fmt.Sprintf("%q is now %q", oldName, newName))
	return nil
}

// ListNames returns stored record names in display order.
func (s *Service) ListNames() ([]string, error) {
	return s.store.List()
}

// resolveName passes a non-empty name through and otherwise runs the
// selection prompt. ok is false when the user dismissed the prompt.
func (s *Service) resolveName(name, title string) (string, bool, error) {
	if name != "" {
		return name, true, nil
	}
	names, err := s.store.List()
	if err != nil {
		s.notifier.Notify("Tabsets unavailable", err.Error())
		return "", false, err
	}
	if len(names) == 0 {
		s.notifier.Notify("No tabsets", "nothing has been saved yet")
		return "", false, nil
	}
	choice, ok, err := s.prompter.Select(title, names)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return choice, true, nil
}
