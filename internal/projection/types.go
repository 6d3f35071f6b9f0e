package projection

import (
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
)

// ContestQueryRequest selects one page of an athlete's contest results.
type ContestQueryRequest struct {
	AthleteID  string
	Year       int
	Discipline category.Discipline
	Limit      int
	After      string
}

// ContestQueryResponse is one page of contest results, newest contest first.
// Next is the continuation token of the following page, empty when the scan
// may be exhausted.
type ContestQueryResponse struct {
	AthleteID  string              `json:"athlete_id"`
	Year       int                 `json:"year"`
	Discipline category.Discipline `json:"discipline"`
	Items      []v1.ContestResult  `json:"items"`
	Next       string              `json:"next,omitempty"`
}

// LeaderboardRequest selects one ranking combination and year.
// Gender and AgeCategory default to "any"; Year defaults to the current year.
type LeaderboardRequest struct {
	Discipline  category.Discipline
	Gender      category.Gender
	AgeCategory category.AgeCategory
	Year        int
	Limit       int
}

// RankedEntry is one leaderboard row with its position.
type RankedEntry struct {
	Rank int `json:"rank"`
	v1.AthleteRanking
}

// LeaderboardResponse is one leaderboard, highest points first.
type LeaderboardResponse struct {
	Discipline  category.Discipline  `json:"discipline"`
	Gender      category.Gender      `json:"gender"`
	AgeCategory category.AgeCategory `json:"age_category"`
	Year        int                  `json:"year"`
	Entries     []RankedEntry        `json:"entries"`
}
