// Package memory is an in-process implementation of every storage interface.
// Useful for testing and local development; it mirrors the Postgres adapters,
// including change capture on contest writes.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

type appliedKey struct {
	id  string
	key v1.RankingKey
}

// Store holds contests, rankings, athletes and the change log in memory.
type Store struct {
	mu sync.RWMutex

	contests map[string]map[string]keys.Attrs // PK -> SK -> item
	rankings map[v1.RankingKey]v1.AthleteRanking
	applied  map[appliedKey]struct{}
	athletes map[string]v1.Athlete

	changes     []*v1.ChangeRecord
	changeIDs   map[string]struct{}
	checkpoints map[string]int64

	nowFn func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		contests:    make(map[string]map[string]keys.Attrs),
		rankings:    make(map[v1.RankingKey]v1.AthleteRanking),
		applied:     make(map[appliedKey]struct{}),
		athletes:    make(map[string]v1.Athlete),
		changeIDs:   make(map[string]struct{}),
		checkpoints: make(map[string]int64),
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ storage.ContestStore    = (*Store)(nil)
	_ storage.RankingStore    = (*Store)(nil)
	_ storage.AthleteRegistry = (*Store)(nil)
	_ storage.AthleteWriter   = (*Store)(nil)
	_ storage.ChangeLog       = (*Store)(nil)
)

// Put upserts a result and logs INSERT or MODIFY when the item changed.
func (s *Store) Put(ctx context.Context, result v1.ContestResult) error {
	item := keys.ToAttrs(result)

	s.mu.Lock()
	defer s.mu.Unlock()

	partition, ok := s.contests[item.PK]
	if !ok {
		partition = make(map[string]keys.Attrs)
		s.contests[item.PK] = partition
	}
	old, existed := partition[item.SK]
	if existed && old == item {
		return nil
	}
	partition[item.SK] = item

	record := &v1.ChangeRecord{
		EventID:   uuid.NewString(),
		EventName: v1.EventInsert,
		Keys:      map[string]string{keys.AttrPK: item.PK, keys.AttrSK: item.SK},
	}
	newImage, err := keys.MarshalImage(result)
	if err != nil {
		return err
	}
	record.NewImage = newImage
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
	s.appendLocked(record)
	return nil
}

// Delete removes a result and logs REMOVE when it existed.
func (s *Store) Delete(ctx context.Context, athleteID string, year int, discipline category.Discipline, contestID string) error {
	pk, sk := keys.PK(athleteID), keys.SK(year, discipline, contestID)

	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.contests[pk][sk]
	if !ok {
		return nil
	}
	delete(s.contests[pk], sk)

	oldResult, err := keys.FromAttrs(old)
	if err != nil {
		return err
	}
	oldImage, err := keys.MarshalImage(oldResult)
	if err != nil {
		return err
	}
	s.appendLocked(&v1.ChangeRecord{
		EventID:   uuid.NewString(),
		EventName: v1.EventRemove,
		Keys:      map[string]string{keys.AttrPK: pk, keys.AttrSK: sk},
		OldImage:  oldImage,
	})
	return nil
}

// QueryByAthleteYearDiscipline scans the athlete partition on the date index.
func (s *Store) QueryByAthleteYearDiscipline(
	ctx context.Context,
	athleteID string,
	year int,
	discipline category.Discipline,
	limit int,
	after string,
) (storage.Page, error) {
	limit = storage.NormalizeLimit(limit)
	pk, prefix := keys.PK(athleteID), keys.Prefix(year, discipline)

	cursor, err := keys.DecodeToken(after, pk, prefix)
	if err != nil {
		return storage.Page{}, err
	}

	s.mu.RLock()
	var matched []keys.Attrs
	for _, item := range s.contests[pk] {
		if len(item.LSI) < len(prefix) || item.LSI[:len(prefix)] != prefix {
			continue
		}
		if !cursor.IsZero() && !cursor.Before(item.LSI, item.SK) {
			continue
		}
		matched = append(matched, item)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LSI != matched[j].LSI {
			return matched[i].LSI > matched[j].LSI
		}
		return matched[i].SK > matched[j].SK
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	page := storage.Page{Items: make([]v1.ContestResult, 0, len(matched))}
	for _, item := range matched {
		r, err := keys.FromAttrs(item)
		if err != nil {
			return storage.Page{}, err
		}
		page.Items = append(page.Items, r)
	}
	if len(matched) == limit {
		page.Next = keys.EncodeToken(keys.CursorOf(matched[len(matched)-1]))
	}
	return page, nil
}

// GetRanking returns a copy of the row, or nil.
func (s *Store) GetRanking(ctx context.Context, key v1.RankingKey) (*v1.AthleteRanking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rankings[key]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// PutRanking replaces the row.
func (s *Store) PutRanking(ctx context.Context, item v1.AthleteRanking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.UpdatedAt = s.nowFn()
	s.rankings[item.RankingKey] = item
	return nil
}

// IncrementRankingPoints adds delta to an existing row.
func (s *Store) IncrementRankingPoints(ctx context.Context, key v1.RankingKey, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rankings[key]
	if !ok {
		return storage.ErrNotFound
	}
	row.Points += delta
	row.UpdatedAt = s.nowFn()
	s.rankings[key] = row
	return nil
}

// ApplyDelta records the application and increments or creates the row
// under one lock.
func (s *Store) ApplyDelta(ctx context.Context, app storage.Application) (bool, error) {
	key := app.Ranking.RankingKey

	s.mu.Lock()
	defer s.mu.Unlock()

	ak := appliedKey{id: app.ID, key: key}
	if _, done := s.applied[ak]; done {
		return false, nil
	}
	s.applied[ak] = struct{}{}

	row, ok := s.rankings[key]
	if !ok {
		row = app.Ranking
		row.Points = 0
	}
	row.Points += app.Delta
	row.UpdatedAt = s.nowFn()
	s.rankings[key] = row
	return true, nil
}

// ListRankings returns one leaderboard, points descending then athlete ID.
func (s *Store) ListRankings(ctx context.Context, filter storage.RankingFilter) ([]v1.AthleteRanking, error) {
	s.mu.RLock()
	var out []v1.AthleteRanking
	for key, row := range s.rankings {
		if key.Discipline != filter.Discipline || key.Gender != filter.Gender ||
			key.AgeCategory != filter.AgeCategory || key.Year != filter.Year {
			continue
		}
		out = append(out, row)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].AthleteID < out[j].AthleteID
	})
	if limit := storage.NormalizeLimit(filter.Limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PutAthlete registers or replaces an athlete profile.
func (s *Store) PutAthlete(ctx context.Context, athlete v1.Athlete) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.athletes[athlete.ID] = athlete
	return nil
}

// GetAthlete returns a copy of the profile, or nil.
func (s *Store) GetAthlete(ctx context.Context, athleteID string) (*v1.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.athletes[athleteID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// AppendChange logs a record unless its event ID is already present.
func (s *Store) AppendChange(ctx context.Context, record *v1.ChangeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.EventID == "" {
		record.EventID = record.IdempotencyKey()
	}
	if _, dup := s.changeIDs[record.EventID]; dup {
		return storage.ErrDuplicate
	}
	s.appendLocked(record)
	return nil
}

func (s *Store) appendLocked(record *v1.ChangeRecord) {
	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.nowFn()
	}
	record.Seq = int64(len(s.changes)) + 1
	s.changeIDs[record.EventID] = struct{}{}
	copied := *record
	s.changes = append(s.changes, &copied)
}

// ReadChangesAfter returns copies of records after cursor.
func (s *Store) ReadChangesAfter(ctx context.Context, cursor int64, limit int) ([]*v1.ChangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cursor < 0 {
		cursor = 0
	}
	var out []*v1.ChangeRecord
	for i := int(cursor); i < len(s.changes) && len(out) < limit; i++ {
		copied := *s.changes[i]
		out = append(out, &copied)
	}
	return out, nil
}

// ReadCheckpoint returns the consumer's cursor.
func (s *Store) ReadCheckpoint(ctx context.Context, consumer string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkpoints[consumer], nil
}

// WriteCheckpoint moves the consumer's cursor forward.
func (s *Store) WriteCheckpoint(ctx context.Context, consumer string, cursor int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cursor > s.checkpoints[consumer] {
		s.checkpoints[consumer] = cursor
	}
	return nil
}
