package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/miti/internal/calendar"
	"github.com/jask/miti/internal/database/repository"
	"github.com/jask/miti/internal/dateinput"
)

const storeTimeout = 10 * time.Second

// NewMarksCommand creates the marks command with subcommands.
func NewMarksCommand(a *app) *cobra.Command {
	marksCmd := &cobra.Command{
		Use:     "marks",
		Aliases: []string{"bookmarks"},
		Short:   "Manage bookmarked days",
		Long:    "List, add, remove, export and import bookmarks. Bookmarks are stored against BS dates.",
	}

	marksCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBookmarks(cmd.Context(), func(ctx context.Context, repo *repository.BookmarkRepo) error {
				list, err := repo.List(ctx)
				if err != nil {
					return err
				}
				return printBookmarks(cmd.OutOrStdout(), list)
			})
		},
	})

	addCmd := &cobra.Command{
		Use:     "add DATE [LABEL...]",
		Short:   "Bookmark a day",
		Example: "  miti marks add 2081/02/08 exam\n  miti marks add --ad 2024-05-21 exam",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isAD, _ := cmd.Flags().GetBool("ad")
			date, err := parseBookmarkDate(args[0], isAD)
			if err != nil {
				return err
			}
			label := strings.Join(args[1:], " ")
			return a.withBookmarks(cmd.Context(), func(ctx context.Context, repo *repository.BookmarkRepo) error {
				b, err := repo.Add(ctx, date, label)
				if err != nil {
					return err
				}
				a.log.Infow("bookmark added", "id", b.ID, "bs", b.Date.String())
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", b.ID, b.Date, b.AD.Format(time.DateOnly))
				return nil
			})
		},
	}
	addCmd.Flags().Bool("ad", false, "DATE is a Gregorian date")
	marksCmd.AddCommand(addCmd)

	marksCmd.AddCommand(&cobra.Command{
		Use:   "rm ID|DATE",
		Short: "Remove a bookmark by ID, or every bookmark on a BS date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBookmarks(cmd.Context(), func(ctx context.Context, repo *repository.BookmarkRepo) error {
				if date, err := dateinput.ParseBS(args[0]); err == nil {
					n, err := repo.DeleteOnDate(ctx, date)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "removed %d bookmark(s) on %s\n", n, date)
					return nil
				}
				ok, err := repo.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no bookmark with id %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})

	marksCmd.AddCommand(&cobra.Command{
		Use:   "export [FILE]",
		Short: "Write bookmarks as TOML (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBookmarks(cmd.Context(), func(ctx context.Context, repo *repository.BookmarkRepo) error {
				list, err := repo.List(ctx)
				if err != nil {
					return err
				}
				if len(args) == 0 || args[0] == "-" {
					return repository.ExportBookmarks(cmd.OutOrStdout(), list)
				}
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := repository.ExportBookmarks(f, list); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %d bookmark(s) to %s\n", len(list), args[0])
				return nil
			})
		},
	})

	marksCmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Read bookmarks from a TOML export; existing IDs are replaced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				r = f
			}
			list, err := repository.ImportBookmarks(r)
			if err != nil {
				return err
			}
			return a.withDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
				if err := repository.SaveImported(ctx, db, list); err != nil {
					return fmt.Errorf("import bookmarks: %w", err)
				}
				a.log.Infow("bookmarks imported", "count", len(list))
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d bookmark(s)\n", len(list))
				return nil
			})
		},
	})

	return marksCmd
}

func (a *app) withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	db, err := a.openBookmarks(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(ctx, db)
}

func (a *app) withBookmarks(ctx context.Context, fn func(context.Context, *repository.BookmarkRepo) error) error {
	return a.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		return fn(ctx, repository.NewBookmarkRepo(db))
	})
}

func parseBookmarkDate(s string, isAD bool) (calendar.Date, error) {
	if !isAD {
		return dateinput.ParseBS(s)
	}
	t, err := dateinput.ParseAD(s)
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.ADToBS(t)
}

func printBookmarks(w io.Writer, list []repository.Bookmark) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no bookmarks")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBS\tAD\tLABEL")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Date, b.AD.Format(time.DateOnly), b.Label)
	}
	return tw.Flush()
}
