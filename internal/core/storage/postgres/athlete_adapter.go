package postgres

import (
	"context"
	"database/sql"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

// AthleteAdapter is the Postgres-backed athlete registry.
type AthleteAdapter struct {
	db *sql.DB
}

var (
	_ storage.AthleteRegistry = (*AthleteAdapter)(nil)
	_ storage.AthleteWriter   = (*AthleteAdapter)(nil)
)

// NewAthleteAdapter creates an AthleteAdapter sharing the given connection.
func NewAthleteAdapter(db *sql.DB) *AthleteAdapter {
	return &AthleteAdapter{db: db}
}

// GetAthlete returns nil, nil for an unknown athlete.
func (a *AthleteAdapter) GetAthlete(ctx context.Context, athleteID string) (*v1.Athlete, error) {
	var (
		athlete             v1.Athlete
		gender, ageCategory string
	)
	err := a.db.QueryRowContext(ctx, queryGetAthlete, athleteID).Scan(
		&athlete.ID, &athlete.Name, &athlete.Surname, &athlete.Country, &gender, &ageCategory,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storage.Persistence("athletes.get", map[string]any{"athlete_id": athleteID}, err)
	}
	athlete.Gender = category.Gender(gender)
	athlete.AgeCategory = category.AgeCategory(ageCategory)
	return &athlete, nil
}

// PutAthlete registers or replaces an athlete profile.
func (a *AthleteAdapter) PutAthlete(ctx context.Context, athlete v1.Athlete) error {
	_, err := a.db.ExecContext(ctx, queryPutAthlete,
		athlete.ID,
		athlete.Name,
		athlete.Surname,
		athlete.Country,
		string(athlete.Gender),
		string(athlete.AgeCategory),
		time.Now().UTC(),
	)
	return storage.Persistence("athletes.put", map[string]any{"athlete_id": athlete.ID}, err)
}
