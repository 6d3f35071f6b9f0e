package projection

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid ranking query")

	// ErrNotFound is returned when the requested ranking row does not exist.
	ErrNotFound = errors.New("ranking not found")
)

// Service implements the read side: contest pages straight from the
// repository and leaderboards from the ranking aggregates.
type Service struct {
	contests  storage.ContestStore
	rankings  storage.RankingStore
	hierarchy *category.Hierarchy
	nowFn     func() time.Time
}

// NewService creates a new projection service.
func NewService(contests storage.ContestStore, rankings storage.RankingStore, hierarchy *category.Hierarchy) *Service {
	if hierarchy == nil {
		hierarchy = category.DefaultHierarchy()
	}
	return &Service{
		contests:  contests,
		rankings:  rankings,
		hierarchy: hierarchy,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// QueryContests returns one page of an athlete's results for a year and
// discipline. Invalid continuation tokens surface as keys.ErrInvalidToken.
func (s *Service) QueryContests(ctx context.Context, req ContestQueryRequest) (*ContestQueryResponse, error) {
	if req.AthleteID == "" {
		return nil, invalidQueryf("athlete_id is required")
	}
	if req.Year <= 0 {
		return nil, invalidQueryf("year is required")
	}
	if req.Discipline == "" {
		return nil, invalidQueryf("discipline is required")
	}
	if req.Limit < 0 {
		return nil, invalidQueryf("limit must not be negative")
	}

	page, err := s.contests.QueryByAthleteYearDiscipline(ctx, req.AthleteID, req.Year, req.Discipline, req.Limit, req.After)
	if err != nil {
		return nil, fmt.Errorf("query contests: %w", err)
	}

	items := page.Items
	if items == nil {
		items = []v1.ContestResult{}
	}
	return &ContestQueryResponse{
		AthleteID:  req.AthleteID,
		Year:       req.Year,
		Discipline: req.Discipline,
		Items:      items,
		Next:       page.Next,
	}, nil
}

// Leaderboard returns the top rows of one combination and year with their
// competition ranks.
func (s *Service) Leaderboard(ctx context.Context, req LeaderboardRequest) (*LeaderboardResponse, error) {
	req, err := s.normalizeAndValidate(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.rankings.ListRankings(ctx, storage.RankingFilter{
		Discipline:  req.Discipline,
		Gender:      req.Gender,
		AgeCategory: req.AgeCategory,
		Year:        req.Year,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	return &LeaderboardResponse{
		Discipline:  req.Discipline,
		Gender:      req.Gender,
		AgeCategory: req.AgeCategory,
		Year:        req.Year,
		Entries:     assignRanks(rows),
	}, nil
}

// AthleteRanking returns one athlete's row in one combination and year.
func (s *Service) AthleteRanking(ctx context.Context, athleteID string, req LeaderboardRequest) (*v1.AthleteRanking, error) {
	req, err := s.normalizeAndValidate(req)
	if err != nil {
		return nil, err
	}
	if athleteID == "" {
		return nil, invalidQueryf("athlete_id is required")
	}

	key := v1.RankingKey{
		AgeCategory: req.AgeCategory,
		Discipline:  req.Discipline,
		Gender:      req.Gender,
		Year:        req.Year,
		AthleteID:   athleteID,
	}
	row, err := s.rankings.GetRanking(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get ranking %s: %w", key, err)
	}
	if row == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return row, nil
}

func (s *Service) normalizeAndValidate(req LeaderboardRequest) (LeaderboardRequest, error) {
	if req.Gender == "" {
		req.Gender = category.GenderAny
	}
	if req.AgeCategory == "" {
		req.AgeCategory = category.AgeCategoryAny
	}
	if req.Year == 0 {
		req.Year = s.nowFn().Year()
	}

	if req.Discipline == "" {
		return req, invalidQueryf("discipline is required")
	}
	if !s.hierarchy.KnownDiscipline(req.Discipline) {
		return req, invalidQueryf("unknown discipline: %s", req.Discipline)
	}
	if !s.hierarchy.KnownGender(req.Gender) {
		return req, invalidQueryf("unknown gender: %s", req.Gender)
	}
	if !s.hierarchy.KnownAgeCategory(req.AgeCategory) {
		return req, invalidQueryf("unknown age_category: %s", req.AgeCategory)
	}
	if req.Year < 0 {
		return req, invalidQueryf("invalid year: %d", req.Year)
	}
	if req.Limit < 0 {
		return req, invalidQueryf("limit must not be negative")
	}
	return req, nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
