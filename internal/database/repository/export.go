package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/jask/miti/internal/calendar"
	"github.com/jask/miti/internal/database"
)

// bookmarkFile is the top-level TOML structure for export files.
type bookmarkFile struct {
	Bookmark []bookmarkRecord `toml:"bookmark"`
}

type bookmarkRecord struct {
	ID    string        `toml:"id"`
	BS    calendar.Date `toml:"bs"`
	AD    string        `toml:"ad,omitempty"` // informational; checked on import
	Label string        `toml:"label"`
}

// ExportBookmarks writes bookmarks as TOML [[bookmark]] tables.
func ExportBookmarks(w io.Writer, list []Bookmark) error {
	f := bookmarkFile{Bookmark: make([]bookmarkRecord, 0, len(list))}
	for _, b := range list {
		f.Bookmark = append(f.Bookmark, bookmarkRecord{
			ID:    b.ID,
			BS:    b.Date,
			AD:    b.AD.Format(time.DateOnly),
			Label: b.Label,
		})
	}
	return toml.NewEncoder(w).Encode(f)
}

// ImportBookmarks reads a file written by ExportBookmarks. Records without
// an id get a fresh one; an ad value that disagrees with bs is an error.
func ImportBookmarks(r io.Reader) ([]Bookmark, error) {
	var f bookmarkFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	out := make([]Bookmark, 0, len(f.Bookmark))
	for i, rec := range f.Bookmark {
		if rec.BS.IsZero() {
			return nil, fmt.Errorf("bookmark %d: missing bs date", i+1)
		}
		ad, err := calendar.BSToAD(rec.BS)
		if err != nil {
			return nil, fmt.Errorf("bookmark %d: %w", i+1, err)
		}
		if rec.AD != "" && rec.AD != ad.Format(time.DateOnly) {
			return nil, fmt.Errorf("bookmark %d: ad %s does not match bs %s (%s)", i+1, rec.AD, rec.BS, ad.Format(time.DateOnly))
		}
		id := rec.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, Bookmark{ID: id, Date: rec.BS, AD: ad, Label: rec.Label})
	}
	return out, nil
}

// SaveImported upserts list in one transaction. Either every bookmark is
// stored or none is.
func SaveImported(ctx context.Context, db *sql.DB, list []Bookmark) error {
	return database.WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := NewBookmarkRepo(tx)
		for _, b := range list {
			if err := repo.Upsert(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
}
