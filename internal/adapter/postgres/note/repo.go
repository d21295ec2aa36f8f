// Package note implements the Note repository using PostgreSQL.
// All queries are scoped by user_id: a note is never visible outside the
// owning user's account.
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const notesTable = "notes"

var noteColumns = []string{"id", "user_id", "text", "entry_date", "created_at"}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new note and returns the persisted domain.Note.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	query := qb.Insert(notesTable).
		Columns(noteColumns...).
		Values(n.ID, n.UserID, n.Text, n.EntryDate, n.CreatedAt).
		Suffix("RETURNING " + strings.Join(noteColumns, ", "))

	created, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "note", n.ID.String())
	}
	return created, nil
}

// GetByID returns a note by primary key. Returns domain.ErrNotFound if the
// note does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	query := qb.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"id": noteID, "user_id": userID})

	n, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "note", noteID.String())
	}
	return n, nil
}

// ListByUser returns all notes for the user in a single round trip.
// No ORDER BY is issued: display ordering is the service layer's concern
// and is recomputed on every fetch.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	query := qb.Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Count returns the number of notes for a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	query := qb.Select("COUNT(*)").
		From(notesTable).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

// UpdateText overwrites the text of a note. entry_date and created_at are
// untouched; there is no concurrency check, last write wins.
// Returns domain.ErrNotFound if the note does not exist or belongs to
// another user.
func (r *Repo) UpdateText(ctx context.Context, userID, noteID uuid.UUID, text string) error {
	query := qb.Update(notesTable).
		Set("text", text).
		Where(squirrel.Eq{"id": noteID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "note", noteID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a note. Irreversible: no soft-delete or tombstone.
// Returns domain.ErrNotFound if the note does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	query := qb.Delete(notesTable).
		Where(squirrel.Eq{"id": noteID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "note", noteID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}

	return nil
}

// queryOne runs a single-row query and scans it into a domain.Note.
func (r *Repo) queryOne(ctx context.Context, query squirrel.Sqlizer) (*domain.Note, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return scanNote(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
}

// scanNote scans a note row. entry_date is a DATE column and comes back as
// time.Time; it is rendered to the canonical day string.
func scanNote(row pgx.Row) (*domain.Note, error) {
	var (
		n         domain.Note
		entryDate time.Time
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Text, &entryDate, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.EntryDate = entryDate.Format(domain.DayFormat)
	return &n, nil
}
