// Package mood implements the MoodEntry repository using PostgreSQL.
// One row per (user, day); writes are upserts and there is no delete path.
package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const moodsTable = "moods"

// Repo provides mood persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mood repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Set upserts the mood for one (user, day). A second write for the same day
// overwrites the previous value.
func (r *Repo) Set(ctx context.Context, e *domain.MoodEntry) error {
	query := qb.Insert(moodsTable).
		Columns("user_id", "entry_date", "mood", "updated_at").
		Values(e.UserID, e.EntryDate, e.Mood.String(), e.UpdatedAt).
		Suffix("ON CONFLICT (user_id, entry_date) DO UPDATE SET mood = EXCLUDED.mood, updated_at = EXCLUDED.updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "mood", e.EntryDate)
	}

	return nil
}

// ListByUser returns every mood entry for the user in one round trip,
// keyed by day. No date-range filtering: the caller renders the whole map.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) (map[string]domain.Mood, error) {
	query := qb.Select("entry_date", "mood").
		From(moodsTable).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	moods := make(map[string]domain.Mood)
	for rows.Next() {
		var (
			entryDate time.Time
			mood      string
		)
		if err := rows.Scan(&entryDate, &mood); err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		moods[entryDate.Format(domain.DayFormat)] = domain.Mood(mood)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}

	return moods, nil
}
