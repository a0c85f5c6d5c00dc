package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/miti/internal/calendar"
	"github.com/jask/miti/internal/database"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// BookmarkRepo handles bookmarks.
type BookmarkRepo struct {
	db DBTX
}

func NewBookmarkRepo(db DBTX) *BookmarkRepo { return &BookmarkRepo{db: db} }

const bookmarkColumns = `id, ad_date, bs_year, bs_month, bs_day, label, created_at`

// Add stores a new bookmark on date and returns it with its generated ID.
func (r *BookmarkRepo) Add(ctx context.Context, date calendar.Date, label string) (Bookmark, error) {
	ad, err := calendar.BSToAD(date)
	if err != nil {
		return Bookmark{}, err
	}
	b := Bookmark{
		ID:        uuid.NewString(),
		Date:      date,
		AD:        ad,
		Label:     strings.TrimSpace(label),
		CreatedAt: database.Now(),
	}
	if err := r.Upsert(ctx, b); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

// Upsert inserts b or replaces the row with the same ID. The stored AD
// date is always derived from b.Date.
func (r *BookmarkRepo) Upsert(ctx context.Context, b Bookmark) error {
	if b.Date.IsZero() {
		return fmt.Errorf("bookmark %s: missing date", b.ID)
	}
	ad, err := calendar.BSToAD(b.Date)
	if err != nil {
		return fmt.Errorf("bookmark %s: %w", b.ID, err)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = database.Now()
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO bookmarks(id, ad_date, bs_year, bs_month, bs_day, label, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		ad_date=excluded.ad_date,
		bs_year=excluded.bs_year,
		bs_month=excluded.bs_month,
		bs_day=excluded.bs_day,
		label=excluded.label;
	`, b.ID, ad.Format(time.DateOnly), b.Date.Year(), int(b.Date.Month()), b.Date.Day(), b.Label, b.CreatedAt)
	return err
}

// Delete removes a bookmark by ID and reports whether one existed.
func (r *BookmarkRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteOnDate removes every bookmark on date.
func (r *BookmarkRepo) DeleteOnDate(ctx context.Context, date calendar.Date) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM bookmarks WHERE bs_year = ? AND bs_month = ? AND bs_day = ?
	`, date.Year(), int(date.Month()), date.Day())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *BookmarkRepo) ListOnDate(ctx context.Context, date calendar.Date) ([]Bookmark, error) {
	return r.query(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks
	WHERE bs_year = ? AND bs_month = ? AND bs_day = ?
	ORDER BY created_at, id`, date.Year(), int(date.Month()), date.Day())
}

func (r *BookmarkRepo) ListInBSMonth(ctx context.Context, year int, month calendar.Month) ([]Bookmark, error) {
	return r.query(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks
	WHERE bs_year = ? AND bs_month = ?
	ORDER BY bs_day, created_at, id`, year, int(month))
}

// ListInADRange returns bookmarks whose AD date falls in [from, to].
func (r *BookmarkRepo) ListInADRange(ctx context.Context, from, to time.Time) ([]Bookmark, error) {
	return r.query(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks
	WHERE ad_date BETWEEN ? AND ?
	ORDER BY ad_date, created_at, id`, from.Format(time.DateOnly), to.Format(time.DateOnly))
}

func (r *BookmarkRepo) List(ctx context.Context) ([]Bookmark, error) {
	return r.query(ctx, `SELECT `+bookmarkColumns+` FROM bookmarks
	ORDER BY bs_year, bs_month, bs_day, created_at, id`)
}

func (r *BookmarkRepo) query(ctx context.Context, q string, args ...any) ([]Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBookmark(rows *sql.Rows) (Bookmark, error) {
	var (
		b                Bookmark
		adDate           string
		year, month, day int
	)
	if err := rows.Scan(&b.ID, &adDate, &year, &month, &day, &b.Label, &b.CreatedAt); err != nil {
		return Bookmark{}, err
	}
	date, err := calendar.NewDate(year, calendar.Month(month), day)
	if err != nil {
		return Bookmark{}, fmt.Errorf("bookmark %s: %w", b.ID, err)
	}
	ad, err := time.Parse(time.DateOnly, adDate)
	if err != nil {
		return Bookmark{}, fmt.Errorf("bookmark %s: %w", b.ID, err)
	}
	b.Date, b.AD = date, ad
	return b, nil
}
