package storage

import (
	"context"
	"errors"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var (
	// ErrDuplicate is returned when a change record with the same event ID is already logged.
	ErrDuplicate = errors.New("change record already exists")

	// ErrNotFound is returned by IncrementRankingPoints when the row does not exist.
	ErrNotFound = errors.New("not found")
)

// Page is one slice of a newest-first range scan. Next is empty when the
// scan may be exhausted; otherwise it resumes right after the last item.
type Page struct {
	Items []v1.ContestResult
	Next  string
}

// ContestStore persists contest results under the composite key layout of
// package keys.
type ContestStore interface {
	// Put upserts by (athlete, year, discipline, contest). Writing the same
	// result twice leaves one item.
	Put(ctx context.Context, result v1.ContestResult) error

	// Delete removes one result. Deleting a missing item is not an error.
	Delete(ctx context.Context, athleteID string, year int, discipline category.Discipline, contestID string) error

	// QueryByAthleteYearDiscipline returns up to limit results of one athlete
	// for a year and discipline, most recent contest first, starting after
	// the continuation token when one is given.
	QueryByAthleteYearDiscipline(
		ctx context.Context,
		athleteID string,
		year int,
		discipline category.Discipline,
		limit int,
		after string,
	) (Page, error)
}

// Application is one idempotent ranking update. ID is unique per change
// record and leg; Ranking carries the key and the profile used if the row
// has to be created.
type Application struct {
	ID      string
	Ranking v1.AthleteRanking
	Delta   int64
}

// RankingFilter selects one leaderboard.
type RankingFilter struct {
	Discipline  category.Discipline
	Gender      category.Gender
	AgeCategory category.AgeCategory
	Year        int
	Limit       int
}

// RankingStore owns the ranking aggregates.
type RankingStore interface {
	// GetRanking returns nil when the row does not exist.
	GetRanking(ctx context.Context, key v1.RankingKey) (*v1.AthleteRanking, error)

	// PutRanking writes the whole row, replacing any existing one.
	PutRanking(ctx context.Context, item v1.AthleteRanking) error

	// IncrementRankingPoints atomically adds delta to an existing row.
	IncrementRankingPoints(ctx context.Context, key v1.RankingKey, delta int64) error

	// ApplyDelta increments the row, or creates it with Points = Delta, as a
	// single atomic operation recorded under app.ID. A second application with
	// the same ID and key changes nothing and returns applied=false.
	ApplyDelta(ctx context.Context, app Application) (applied bool, err error)

	// ListRankings returns one leaderboard ordered by points descending.
	ListRankings(ctx context.Context, filter RankingFilter) ([]v1.AthleteRanking, error)
}

// AthleteRegistry is the read-only athlete profile source.
type AthleteRegistry interface {
	// GetAthlete returns nil, nil when the athlete is unknown.
	GetAthlete(ctx context.Context, athleteID string) (*v1.Athlete, error)
}

// AthleteWriter seeds the registry. The ranking engine never writes athletes.
type AthleteWriter interface {
	PutAthlete(ctx context.Context, athlete v1.Athlete) error
}

// ChangeLog is the ordered change stream the ranking consumer drains.
type ChangeLog interface {
	// AppendChange logs a record and sets its Seq. Returns ErrDuplicate when
	// the event ID was already logged.
	AppendChange(ctx context.Context, record *v1.ChangeRecord) error

	// ReadChangesAfter returns records with Seq > cursor in Seq order.
	ReadChangesAfter(ctx context.Context, cursor int64, limit int) ([]*v1.ChangeRecord, error)

	// ReadCheckpoint returns 0 when the consumer has never checkpointed.
	ReadCheckpoint(ctx context.Context, consumer string) (int64, error)

	// WriteCheckpoint never moves a checkpoint backwards.
	WriteCheckpoint(ctx context.Context, consumer string, cursor int64) error
}

// NormalizeLimit clamps a requested page size to [1, MaxPageLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}
