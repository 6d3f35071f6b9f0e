package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

// RankingAdapter implements storage.RankingStore using PostgreSQL.
type RankingAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

var _ storage.RankingStore = (*RankingAdapter)(nil)

// NewRankingAdapter creates a RankingAdapter sharing the given connection.
func NewRankingAdapter(db *sql.DB) *RankingAdapter {
	return &RankingAdapter{db: db, nowFn: func() time.Time { return time.Now().UTC() }}
}

// GetRanking returns nil, nil when the row does not exist.
func (a *RankingAdapter) GetRanking(ctx context.Context, key v1.RankingKey) (*v1.AthleteRanking, error) {
	row, err := scanRankingRow(a.db.QueryRowContext(ctx, queryGetRanking, rankingKeyArgs(key)...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storage.Persistence("rankings.get", rankingKeyParams(key), err)
	}
	return row, nil
}

// PutRanking writes the whole row.
func (a *RankingAdapter) PutRanking(ctx context.Context, item v1.AthleteRanking) error {
	args := append(rankingKeyArgs(item.RankingKey),
		item.Points, item.Country, item.Name, item.Surname, a.nowFn())
	if _, err := a.db.ExecContext(ctx, queryPutRanking, args...); err != nil {
		return storage.Persistence("rankings.put", rankingKeyParams(item.RankingKey), err)
	}
	return nil
}

// IncrementRankingPoints adds delta in place; storage.ErrNotFound when the
// row does not exist.
func (a *RankingAdapter) IncrementRankingPoints(ctx context.Context, key v1.RankingKey, delta int64) error {
	params := rankingKeyParams(key)
	params["delta"] = delta

	args := append(rankingKeyArgs(key), delta, a.nowFn())
	res, err := a.db.ExecContext(ctx, queryIncrementRanking, args...)
	if err != nil {
		return storage.Persistence("rankings.increment", params, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storage.Persistence("rankings.increment", params, fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ApplyDelta claims app.ID for the ranking key and increments or creates the
// row in a single statement. applied is false when the claim already existed.
func (a *RankingAdapter) ApplyDelta(ctx context.Context, app storage.Application) (bool, error) {
	key := app.Ranking.RankingKey
	params := rankingKeyParams(key)
	params["application_id"] = app.ID
	params["delta"] = app.Delta

	res, err := a.db.ExecContext(ctx, queryApplyDelta,
		app.ID,
		string(key.AgeCategory),
		string(key.Discipline),
		string(key.Gender),
		key.Year,
		key.AthleteID,
		app.Delta,
		app.Ranking.Country,
		app.Ranking.Name,
		app.Ranking.Surname,
		a.nowFn(),
	)
	if err != nil {
		return false, storage.Persistence("rankings.apply_delta", params, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storage.Persistence("rankings.apply_delta", params, fmt.Errorf("rows affected: %w", err))
	}
	return n > 0, nil
}

// ListRankings returns one leaderboard, points descending then athlete ID.
func (a *RankingAdapter) ListRankings(ctx context.Context, filter storage.RankingFilter) ([]v1.AthleteRanking, error) {
	limit := storage.NormalizeLimit(filter.Limit)
	params := map[string]any{
		"discipline":   string(filter.Discipline),
		"gender":       string(filter.Gender),
		"age_category": string(filter.AgeCategory),
		"year":         filter.Year,
		"limit":        limit,
	}

	rows, err := a.db.QueryContext(ctx, queryListRankings,
		string(filter.Discipline), string(filter.Gender), string(filter.AgeCategory), filter.Year, limit)
	if err != nil {
		return nil, storage.Persistence("rankings.list", params, err)
	}
	defer rows.Close()

	var out []v1.AthleteRanking
	for rows.Next() {
		r, err := scanRankingRow(rows)
		if err != nil {
			return nil, storage.Persistence("rankings.list", params, fmt.Errorf("scan ranking row: %w", err))
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Persistence("rankings.list", params, err)
	}
	return out, nil
}
