package v1

import (
	"fmt"
	"time"

	"github.com/isa-rankings/rankings/internal/core/category"
)

// ContestResult is one athlete's outcome in one contest.
// Points are always a stored absolute value; signed deltas only exist while
// a change record is being processed.
type ContestResult struct {
	AthleteID string `json:"athlete_id"`
	ContestID string `json:"contest_id"`

	// ContestDate is a unix timestamp (seconds). Its UTC year selects the
	// ranking year the points are credited to.
	ContestDate int64 `json:"contest_date"`

	ContestDiscipline category.Discipline `json:"contest_discipline"`
	Points            int                 `json:"points"`
}

// Year returns the UTC calendar year of the contest date.
func (r ContestResult) Year() int {
	return YearOf(r.ContestDate)
}

// Validate ensures the result carries every identity field.
func (r *ContestResult) Validate() error {
	if r.AthleteID == "" {
		return fmt.Errorf("athlete_id is required")
	}
	if r.ContestID == "" {
		return fmt.Errorf("contest_id is required")
	}
	if r.ContestDate <= 0 {
		return fmt.Errorf("contest_date must be a positive unix timestamp")
	}
	if r.ContestDiscipline == "" {
		return fmt.Errorf("contest_discipline is required")
	}
	if r.Points < 0 {
		return fmt.Errorf("points must not be negative")
	}
	return nil
}

// YearOf returns the UTC year of a unix timestamp in seconds.
func YearOf(unix int64) int {
	return time.Unix(unix, 0).UTC().Year()
}

// Athlete is the registry profile the engine reads when crediting points.
// AgeCategory is a snapshot at processing time.
type Athlete struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Surname     string               `json:"surname"`
	Country     string               `json:"country"`
	Gender      category.Gender      `json:"gender"`
	AgeCategory category.AgeCategory `json:"age_category"`
}

// Validate requires the athlete ID. An empty gender or age category means the
// axis is absent and the athlete only ranks in complete combinations.
func (a *Athlete) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

// RankingKey identifies one ranking row. All five fields are required.
type RankingKey struct {
	AgeCategory category.AgeCategory `json:"age_category"`
	Discipline  category.Discipline  `json:"discipline"`
	Gender      category.Gender      `json:"gender"`
	Year        int                  `json:"year"`
	AthleteID   string               `json:"athlete_id"`
}

// Validate reports the first missing key field.
func (k RankingKey) Validate() error {
	switch {
	case k.AgeCategory == "":
		return fmt.Errorf("age_category is required")
	case k.Discipline == "":
		return fmt.Errorf("discipline is required")
	case k.Gender == "":
		return fmt.Errorf("gender is required")
	case k.Year <= 0:
		return fmt.Errorf("year is required")
	case k.AthleteID == "":
		return fmt.Errorf("athlete_id is required")
	}
	return nil
}

// Combination returns the category triple of the key.
func (k RankingKey) Combination() category.Combination {
	return category.Combination{Discipline: k.Discipline, Gender: k.Gender, AgeCategory: k.AgeCategory}
}

func (k RankingKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%d/%s", k.Discipline, k.Gender, k.AgeCategory, k.Year, k.AthleteID)
}

// AthleteRanking is the running point total of one athlete for one
// combination and year. Country, Name and Surname are copied from the athlete
// when the row is created and are not kept in sync afterwards.
type AthleteRanking struct {
	RankingKey

	Points    int64     `json:"points"`
	Country   string    `json:"country"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAthleteRanking builds the row created on an athlete's first contribution
// to a combination.
func NewAthleteRanking(key RankingKey, athlete *Athlete, points int64) AthleteRanking {
	return AthleteRanking{
		RankingKey: key,
		Points:     points,
		Country:    athlete.Country,
		Name:       athlete.Name,
		Surname:    athlete.Surname,
	}
}
