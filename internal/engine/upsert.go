package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

const defaultCombinationWorkers = 8

// Contribution is one signed point delta credited to an athlete for a
// discipline and year. ApplicationID is stable across redeliveries.
type Contribution struct {
	ApplicationID string
	Athlete       *v1.Athlete
	Discipline    category.Discipline
	Year          int
	Delta         int64
}

// UpsertResult counts what happened to the expanded combinations.
type UpsertResult struct {
	Combinations int
	Applied      int
	Duplicates   int
}

// Upserter fans a contribution out to every category combination it counts
// towards and applies it to each ranking row.
type Upserter struct {
	hierarchy *category.Hierarchy
	rankings  storage.RankingStore
	workers   int
	metrics   *Metrics
}

// NewUpserter creates an Upserter. workers bounds the number of concurrent
// row updates per contribution.
func NewUpserter(h *category.Hierarchy, rankings storage.RankingStore, workers int, metrics *Metrics) *Upserter {
	if workers <= 0 {
		workers = defaultCombinationWorkers
	}
	return &Upserter{hierarchy: h, rankings: rankings, workers: workers, metrics: metrics}
}

// Apply runs ApplyDelta for every combination. Every combination is
// attempted even if one fails; the first error is returned. Combinations that
// succeeded are recorded under the application ID and are not applied again
// when the contribution is retried.
func (u *Upserter) Apply(ctx context.Context, c Contribution) (UpsertResult, error) {
	combos := u.hierarchy.Expand(c.Discipline, c.Athlete.Gender, c.Athlete.AgeCategory)
	result := UpsertResult{Combinations: len(combos)}
	u.metrics.observeFanOut(len(combos))
	if len(combos) == 0 {
		return result, nil
	}

	var applied, duplicates atomic.Int64
	var g errgroup.Group
	g.SetLimit(min(u.workers, len(combos)))

	for _, combo := range combos {
		key := v1.RankingKey{
			AgeCategory: combo.AgeCategory,
			Discipline:  combo.Discipline,
			Gender:      combo.Gender,
			Year:        c.Year,
			AthleteID:   c.Athlete.ID,
		}
		g.Go(func() error {
			ok, err := u.rankings.ApplyDelta(ctx, storage.Application{
				ID:      c.ApplicationID,
				Ranking: v1.NewAthleteRanking(key, c.Athlete, c.Delta),
				Delta:   c.Delta,
			})
			if err != nil {
				return fmt.Errorf("apply %+d to %s: %w", c.Delta, key, err)
			}
			if ok {
				applied.Add(1)
			} else {
				duplicates.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	result.Applied = int(applied.Load())
	result.Duplicates = int(duplicates.Load())
	u.metrics.recordApplications(result.Applied, result.Duplicates)
	return result, err
}
