package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func newMockRankingAdapter(t *testing.T) (*RankingAdapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := NewRankingAdapter(db)
	adapter.nowFn = func() time.Time { return fixedNow }
	return adapter, mock, db
}

func sampleKey() v1.RankingKey {
	return v1.RankingKey{
		AgeCategory: category.AgeCategoryJunior,
		Discipline:  category.DisciplineBlind,
		Gender:      category.GenderFemale,
		Year:        2023,
		AthleteID:   "a1",
	}
}

func rankingRowColumns() []string {
	return []string{"age_category", "discipline", "gender", "year", "athlete_id", "points", "country", "name", "surname", "updated_at"}
}

func TestRankingAdapter_ApplyDelta(t *testing.T) {
	key := sampleKey()
	app := storage.Application{
		ID:      "evt-1:0",
		Ranking: v1.AthleteRanking{RankingKey: key, Country: "CH", Name: "Ada", Surname: "Line"},
		Delta:   20,
	}

	tests := []struct {
		name         string
		rowsAffected int64
		wantApplied  bool
	}{
		{name: "claimed application writes", rowsAffected: 1, wantApplied: true},
		{name: "known application is skipped", rowsAffected: 0, wantApplied: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockRankingAdapter(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta(queryApplyDelta)).
				WithArgs("evt-1:0", "junior", "blind", "female", 2023, "a1", int64(20), "CH", "Ada", "Line", fixedNow).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			applied, err := adapter.ApplyDelta(context.Background(), app)
			require.NoError(t, err)
			require.Equal(t, tc.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRankingAdapter_ApplyDeltaFailureCarriesParams(t *testing.T) {
	adapter, mock, db := newMockRankingAdapter(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(queryApplyDelta)).WillReturnError(sql.ErrConnDone)

	_, err := adapter.ApplyDelta(context.Background(), storage.Application{
		ID:      "evt-1:1",
		Ranking: v1.AthleteRanking{RankingKey: sampleKey()},
		Delta:   -5,
	})
	require.ErrorIs(t, err, storage.ErrPersistence)

	var pe *storage.PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "rankings.apply_delta", pe.Op)
	require.Equal(t, "evt-1:1", pe.Params["application_id"])
	require.Equal(t, int64(-5), pe.Params["delta"])
	require.Equal(t, "a1", pe.Params["athlete_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingAdapter_GetRanking(t *testing.T) {
	adapter, mock, db := newMockRankingAdapter(t)
	defer db.Close()

	key := sampleKey()
	mock.ExpectQuery(regexp.QuoteMeta(queryGetRanking)).
		WithArgs("junior", "blind", "female", 2023, "a1").
		WillReturnRows(sqlmock.NewRows(rankingRowColumns()))
	mock.ExpectQuery(regexp.QuoteMeta(queryGetRanking)).
		WithArgs("junior", "blind", "female", 2023, "a1").
		WillReturnRows(sqlmock.NewRows(rankingRowColumns()).
			AddRow("junior", "blind", "female", 2023, "a1", int64(40), "CH", "Ada", "Line", fixedNow))

	row, err := adapter.GetRanking(context.Background(), key)
	require.NoError(t, err)
	require.Nil(t, row)

	row, err = adapter.GetRanking(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.Equal(t, key, row.RankingKey)
	require.Equal(t, int64(40), row.Points)
	require.Equal(t, "CH", row.Country)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingAdapter_PutAndIncrement(t *testing.T) {
	adapter, mock, db := newMockRankingAdapter(t)
	defer db.Close()

	key := sampleKey()
	mock.ExpectExec(regexp.QuoteMeta(queryPutRanking)).
		WithArgs("junior", "blind", "female", 2023, "a1", int64(7), "CH", "Ada", "Line", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryIncrementRanking)).
		WithArgs("junior", "blind", "female", 2023, "a1", int64(3), fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryIncrementRanking)).
		WithArgs("junior", "blind", "female", 2023, "a1", int64(3), fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, adapter.PutRanking(context.Background(), v1.AthleteRanking{
		RankingKey: key, Points: 7, Country: "CH", Name: "Ada", Surname: "Line",
	}))
	require.NoError(t, adapter.IncrementRankingPoints(context.Background(), key, 3))
	require.ErrorIs(t, adapter.IncrementRankingPoints(context.Background(), key, 3), storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingAdapter_ListRankings(t *testing.T) {
	adapter, mock, db := newMockRankingAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListRankings)).
		WithArgs("overall", "any", "any", 2023, storage.DefaultPageLimit).
		WillReturnRows(sqlmock.NewRows(rankingRowColumns()).
			AddRow("any", "overall", "any", 2023, "a2", int64(90), "FR", "Bo", "Rope", fixedNow).
			AddRow("any", "overall", "any", 2023, "a1", int64(40), "CH", "Ada", "Line", fixedNow)).
		RowsWillBeClosed()

	rows, err := adapter.ListRankings(context.Background(), storage.RankingFilter{
		Discipline:  category.DisciplineOverall,
		Gender:      category.GenderAny,
		AgeCategory: category.AgeCategoryAny,
		Year:        2023,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "a2", rows[0].AthleteID)
	require.Equal(t, category.DisciplineOverall, rows[0].Discipline)
	require.Equal(t, int64(40), rows[1].Points)
	require.NoError(t, mock.ExpectationsWereMet())
}
