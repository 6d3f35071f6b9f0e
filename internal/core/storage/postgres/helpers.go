package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// nullableJSON maps an absent image to SQL NULL rather than JSON "null".
func nullableJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

// appendChange takes the change log lock and writes the record inside the
// caller's transaction.
func appendChange(ctx context.Context, tx queryer, record *v1.ChangeRecord) error {
	if _, err := tx.ExecContext(ctx, queryLockChangeLog, changeLogLockKey); err != nil {
		return fmt.Errorf("failed to lock change log: %w", err)
	}
	return insertChange(ctx, tx, record)
}

// insertChange writes a change record for a caller already holding the change
// log lock. Sets record.Seq; returns storage.ErrDuplicate when the event ID is
// already logged.
func insertChange(ctx context.Context, tx queryer, record *v1.ChangeRecord) error {
	if record.EventID == "" {
		record.EventID = record.IdempotencyKey()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	keysJSON, err := json.Marshal(record.Keys)
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, queryAppendChange,
		record.EventID,
		string(record.EventName),
		keysJSON,
		nullableJSON(record.OldImage),
		nullableJSON(record.NewImage),
		record.RecordedAt,
	).Scan(&seq)
	if err == sql.ErrNoRows {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to append change: %w", err)
	}
	record.Seq = seq
	return nil
}

func scanChangeRow(row scanner) (*v1.ChangeRecord, error) {
	var (
		rec                v1.ChangeRecord
		name               string
		keysJSON           []byte
		oldImage, newImage []byte
	)
	if err := row.Scan(&rec.Seq, &rec.EventID, &name, &keysJSON, &oldImage, &newImage, &rec.RecordedAt); err != nil {
		return nil, fmt.Errorf("failed to scan change row: %w", err)
	}
	rec.EventName = v1.EventName(name)
	if err := json.Unmarshal(keysJSON, &rec.Keys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keys: %w", err)
	}
	if len(oldImage) > 0 {
		rec.OldImage = json.RawMessage(oldImage)
	}
	if len(newImage) > 0 {
		rec.NewImage = json.RawMessage(newImage)
	}
	return &rec, nil
}

func scanContestRow(row scanner) (keys.Attrs, error) {
	var a keys.Attrs
	var discipline string
	err := row.Scan(&a.PK, &a.SK, &a.LSI, &a.AthleteID, &a.ContestID, &a.ContestDate, &discipline, &a.Points)
	if err != nil {
		return keys.Attrs{}, err
	}
	a.Discipline = category.Discipline(discipline)
	return a, nil
}

func scanRankingRow(row scanner) (*v1.AthleteRanking, error) {
	var (
		r                         v1.AthleteRanking
		ageCategory, disc, gender string
	)
	err := row.Scan(
		&ageCategory, &disc, &gender, &r.Year, &r.AthleteID,
		&r.Points, &r.Country, &r.Name, &r.Surname, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.AgeCategory = category.AgeCategory(ageCategory)
	r.Discipline = category.Discipline(disc)
	r.Gender = category.Gender(gender)
	return &r, nil
}

// rankingKeyArgs is the positional argument order of every ranking key predicate.
func rankingKeyArgs(k v1.RankingKey) []interface{} {
	return []interface{}{string(k.AgeCategory), string(k.Discipline), string(k.Gender), k.Year, k.AthleteID}
}

func rankingKeyParams(k v1.RankingKey) map[string]any {
	return map[string]any{
		"age_category": string(k.AgeCategory),
		"discipline":   string(k.Discipline),
		"gender":       string(k.Gender),
		"year":         k.Year,
		"athlete_id":   k.AthleteID,
	}
}
