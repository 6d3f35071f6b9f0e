package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"github.com/isa-rankings/rankings/internal/core/storage/memory"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix()
}

func contest(athlete, id string, date int64, d category.Discipline, points int) v1.ContestResult {
	return v1.ContestResult{AthleteID: athlete, ContestID: id, ContestDate: date, ContestDiscipline: d, Points: points}
}

func juniorFemale(id string) v1.Athlete {
	return v1.Athlete{
		ID:          id,
		Name:        "Mia",
		Surname:     "Noll",
		Country:     "AT",
		Gender:      category.GenderFemale,
		AgeCategory: category.AgeCategoryJunior,
	}
}

func insertRecord(t *testing.T, eventID string, r v1.ContestResult) *v1.ChangeRecord {
	t.Helper()
	img, err := keys.MarshalImage(r)
	require.NoError(t, err)
	return &v1.ChangeRecord{
		EventID:   eventID,
		EventName: v1.EventInsert,
		Keys:      keys.ItemKeys(r.AthleteID, r.Year(), r.ContestDiscipline, r.ContestID),
		NewImage:  img,
	}
}

func modifyRecord(t *testing.T, eventID string, before, after v1.ContestResult) *v1.ChangeRecord {
	t.Helper()
	oldImg, err := keys.MarshalImage(before)
	require.NoError(t, err)
	newImg, err := keys.MarshalImage(after)
	require.NoError(t, err)
	return &v1.ChangeRecord{
		EventID:   eventID,
		EventName: v1.EventModify,
		Keys:      keys.ItemKeys(after.AthleteID, after.Year(), after.ContestDiscipline, after.ContestID),
		OldImage:  oldImg,
		NewImage:  newImg,
	}
}

func removeRecord(t *testing.T, eventID string, r v1.ContestResult) *v1.ChangeRecord {
	t.Helper()
	img, err := keys.MarshalImage(r)
	require.NoError(t, err)
	return &v1.ChangeRecord{
		EventID:   eventID,
		EventName: v1.EventRemove,
		Keys:      keys.ItemKeys(r.AthleteID, r.Year(), r.ContestDiscipline, r.ContestID),
		OldImage:  img,
	}
}

// flakyRankings fails ApplyDelta for matching applications until cleared.
type flakyRankings struct {
	*memory.Store

	mu      sync.Mutex
	failFor func(storage.Application) bool
}

func (f *flakyRankings) ApplyDelta(ctx context.Context, app storage.Application) (bool, error) {
	f.mu.Lock()
	fail := f.failFor != nil && f.failFor(app)
	f.mu.Unlock()
	if fail {
		return false, storage.Persistence("rankings.apply_delta",
			map[string]any{"athlete_id": app.Ranking.AthleteID, "application_id": app.ID},
			errors.New("connection reset by peer"))
	}
	return f.Store.ApplyDelta(ctx, app)
}

func (f *flakyRankings) heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFor = nil
}

type testEngine struct {
	store     *memory.Store
	rankings  *flakyRankings
	processor *Processor
}

func newTestEngine(t *testing.T, athletes ...v1.Athlete) *testEngine {
	t.Helper()
	store := memory.NewStore()
	for _, a := range athletes {
		require.NoError(t, store.PutAthlete(context.Background(), a))
	}
	rankings := &flakyRankings{Store: store}
	upserter := NewUpserter(category.DefaultHierarchy(), rankings, 4, nil)
	return &testEngine{
		store:     store,
		rankings:  rankings,
		processor: NewProcessor(store, upserter, nil),
	}
}

// points returns the ranking points of every combination of the athlete's
// contribution, keyed by combination. Missing rows are absent from the map.
func (e *testEngine) points(t *testing.T, athlete v1.Athlete, d category.Discipline, year int) map[category.Combination]int64 {
	t.Helper()
	out := make(map[category.Combination]int64)
	for _, c := range category.DefaultHierarchy().Expand(d, athlete.Gender, athlete.AgeCategory) {
		row, err := e.store.GetRanking(context.Background(), v1.RankingKey{
			AgeCategory: c.AgeCategory,
			Discipline:  c.Discipline,
			Gender:      c.Gender,
			Year:        year,
			AthleteID:   athlete.ID,
		})
		require.NoError(t, err)
		if row != nil {
			out[c] = row.Points
		}
	}
	return out
}

func uniform(t *testing.T, got map[category.Combination]int64, n int, want int64) {
	t.Helper()
	require.Len(t, got, n)
	for c, p := range got {
		require.Equal(t, want, p, "combination %v", c)
	}
}
