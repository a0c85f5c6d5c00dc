// Package commands holds the miti command tree.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/miti/internal/config"
	"github.com/jask/miti/internal/database"
	"github.com/jask/miti/internal/database/repository"
	"github.com/jask/miti/internal/logging"
	"github.com/jask/miti/internal/tui"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app carries what every subcommand needs once config is loaded.
type app struct {
	cfg config.Config
	log *logging.Logger
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.WithComponent("cli").WithCommand(cmd.CommandPath())
	return nil
}

func (a *app) sync(*cobra.Command, []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// openBookmarks migrates and opens the bookmark database.
func (a *app) openBookmarks(ctx context.Context) (*sql.DB, error) {
	return database.Setup(ctx, a.cfg.Database.Path)
}

// NewRootCommand builds the miti command. Without a subcommand it starts
// the calendar viewer.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "miti",
		Short:             "AD ↔ BS calendar viewer and converter",
		Long:              "miti converts dates between the Gregorian (AD) and Bikram Sambat (BS) calendars and shows both side by side.",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		PersistentPostRun: a.sync,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	root.AddCommand(NewAD2BSCommand(a))
	root.AddCommand(NewBS2ADCommand(a))
	root.AddCommand(NewMonthCommand(a))
	root.AddCommand(NewMarksCommand(a))
	root.AddCommand(NewConfigCommand())
	root.AddCommand(NewMigrateCommand(a))
	root.AddCommand(NewVersionCommand())
	return root
}

func (a *app) runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := tui.Options{
		Logger:       a.log,
		Location:     a.cfg.Location(),
		WeekStart:    a.cfg.WeekStart(),
		ADDateFormat: a.cfg.UI.ADDateFormat,
		ShowHelp:     a.cfg.UI.ShowHelpOnOpen,
	}

	setupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	db, err := a.openBookmarks(setupCtx)
	cancel()
	if err != nil {
		// the calendar is still useful without bookmarks
		a.log.WithError(err).Warn("bookmarks disabled")
	} else {
		defer db.Close()
		opts.Bookmarks = repository.NewBookmarkRepo(db)
	}

	a.log.Infow("starting calendar viewer", "timezone", a.cfg.UI.Timezone, "week_start", a.cfg.UI.WeekStart)
	p := tea.NewProgram(tui.New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print miti version",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "miti %s\n", Version)
		},
	}
}
