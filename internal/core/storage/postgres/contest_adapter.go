package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

// ContestAdapter implements storage.ContestStore. Every write that changes
// a row logs a change record in the same transaction, which is the change
// stream the ranking consumer drains.
type ContestAdapter struct {
	db    *sql.DB
	nowFn func() time.Time
}

var _ storage.ContestStore = (*ContestAdapter)(nil)

// NewContestAdapter creates a ContestAdapter sharing the given connection.
func NewContestAdapter(db *sql.DB) *ContestAdapter {
	return &ContestAdapter{db: db, nowFn: func() time.Time { return time.Now().UTC() }}
}

// Put upserts by (athlete, year, discipline, contest) and logs INSERT or
// MODIFY. Writing an identical result logs nothing.
func (a *ContestAdapter) Put(ctx context.Context, result v1.ContestResult) error {
	item := keys.ToAttrs(result)
	params := map[string]any{
		"athlete_id": result.AthleteID,
		"contest_id": result.ContestID,
		"year":       result.Year(),
		"discipline": string(result.ContestDiscipline),
	}

	err := a.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, queryLockChangeLog, changeLogLockKey); err != nil {
			return fmt.Errorf("lock change log: %w", err)
		}

		old, existed, err := selectContestForUpdate(ctx, tx, item.PK, item.SK)
		if err != nil {
			return err
		}
		if existed && old == item {
			return nil
		}

		now := a.nowFn()
		if _, err := tx.ExecContext(ctx, queryUpsertContest,
			item.PK, item.SK, item.LSI,
			item.AthleteID, item.ContestID, item.ContestDate, string(item.Discipline), item.Points,
			now,
		); err != nil {
			return fmt.Errorf("upsert contest: %w", err)
		}

		record := &v1.ChangeRecord{
			EventID:    uuid.NewString(),
			EventName:  v1.EventInsert,
			Keys:       map[string]string{keys.AttrPK: item.PK, keys.AttrSK: item.SK},
			RecordedAt: now,
		}
		if record.NewImage, err = keys.MarshalImage(result); err != nil {
			return err
		}
		if existed {
			oldResult, err := keys.FromAttrs(old)
			if err != nil {
				return err
			}
			if record.OldImage, err = keys.MarshalImage(oldResult); err != nil {
				return err
			}
			record.EventName = v1.EventModify
		}
		return captureChange(ctx, tx, record)
	})
	return storage.Persistence("contests.put", params, err)
}

// Delete removes one result and logs REMOVE. A missing row is not an error.
func (a *ContestAdapter) Delete(ctx context.Context, athleteID string, year int, discipline category.Discipline, contestID string) error {
	pk, sk := keys.PK(athleteID), keys.SK(year, discipline, contestID)
	params := map[string]any{
		"athlete_id": athleteID,
		"contest_id": contestID,
		"year":       year,
		"discipline": string(discipline),
	}

	err := a.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, queryLockChangeLog, changeLogLockKey); err != nil {
			return fmt.Errorf("lock change log: %w", err)
		}

		old, existed, err := selectContestForUpdate(ctx, tx, pk, sk)
		if err != nil || !existed {
			return err
		}
		if _, err := tx.ExecContext(ctx, queryDeleteContest, pk, sk); err != nil {
			return fmt.Errorf("delete contest: %w", err)
		}

		oldResult, err := keys.FromAttrs(old)
		if err != nil {
			return err
		}
		oldImage, err := keys.MarshalImage(oldResult)
		if err != nil {
			return err
		}
		return captureChange(ctx, tx, &v1.ChangeRecord{
			EventID:    uuid.NewString(),
			EventName:  v1.EventRemove,
			Keys:       map[string]string{keys.AttrPK: pk, keys.AttrSK: sk},
			OldImage:   oldImage,
			RecordedAt: a.nowFn(),
		})
	})
	return storage.Persistence("contests.delete", params, err)
}

// QueryByAthleteYearDiscipline reads one page from the (pk, lsi, sk) index,
// newest contest first.
func (a *ContestAdapter) QueryByAthleteYearDiscipline(
	ctx context.Context,
	athleteID string,
	year int,
	discipline category.Discipline,
	limit int,
	after string,
) (storage.Page, error) {
	limit = storage.NormalizeLimit(limit)
	pk, prefix := keys.PK(athleteID), keys.Prefix(year, discipline)
	upper := keys.PrefixUpperBound(prefix)

	cursor, err := keys.DecodeToken(after, pk, prefix)
	if err != nil {
		return storage.Page{}, err
	}

	params := map[string]any{
		"athlete_id": athleteID,
		"year":       year,
		"discipline": string(discipline),
		"limit":      limit,
	}

	var rows *sql.Rows
	if cursor.IsZero() {
		rows, err = a.db.QueryContext(ctx, queryContestsFirstPage, pk, prefix, upper, limit)
	} else {
		rows, err = a.db.QueryContext(ctx, queryContestsAfterCursor, pk, prefix, upper, cursor.LSI, cursor.SK, limit)
	}
	if err != nil {
		return storage.Page{}, storage.Persistence("contests.query", params, err)
	}
	defer rows.Close()

	page := storage.Page{Items: make([]v1.ContestResult, 0, limit)}
	var last keys.Attrs
	for rows.Next() {
		item, err := scanContestRow(rows)
		if err != nil {
			return storage.Page{}, storage.Persistence("contests.query", params, fmt.Errorf("scan contest row: %w", err))
		}
		result, err := keys.FromAttrs(item)
		if err != nil {
			return storage.Page{}, err
		}
		page.Items = append(page.Items, result)
		last = item
	}
	if err := rows.Err(); err != nil {
		return storage.Page{}, storage.Persistence("contests.query", params, err)
	}

	if len(page.Items) == limit {
		page.Next = keys.EncodeToken(keys.CursorOf(last))
	}
	return page, nil
}

func (a *ContestAdapter) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func selectContestForUpdate(ctx context.Context, tx *sql.Tx, pk, sk string) (keys.Attrs, bool, error) {
	item, err := scanContestRow(tx.QueryRowContext(ctx, querySelectContestForUpdate, pk, sk))
	if err == sql.ErrNoRows {
		return keys.Attrs{}, false, nil
	}
	if err != nil {
		return keys.Attrs{}, false, fmt.Errorf("select contest: %w", err)
	}
	return item, true, nil
}

func captureChange(ctx context.Context, tx *sql.Tx, record *v1.ChangeRecord) error {
	if err := insertChange(ctx, tx, record); err != nil {
		return err
	}
	slog.Debug("[Postgres] Captured contest change",
		"event_id", record.EventID,
		"event_name", record.EventName,
		"seq", record.Seq)
	return nil
}
