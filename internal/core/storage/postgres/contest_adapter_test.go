package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

func newMockContestAdapter(t *testing.T) (*ContestAdapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := NewContestAdapter(db)
	adapter.nowFn = func() time.Time { return fixedNow }
	return adapter, mock, db
}

func sampleResult() v1.ContestResult {
	return v1.ContestResult{
		AthleteID:         "a1",
		ContestID:         "c1",
		ContestDate:       time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC).Unix(),
		ContestDiscipline: category.DisciplineBlind,
		Points:            20,
	}
}

func contestRowColumns() []string {
	return []string{"pk", "sk", "lsi", "athlete_id", "contest_id", "contest_date", "contest_discipline", "points"}
}

func contestRow(rows *sqlmock.Rows, a keys.Attrs) *sqlmock.Rows {
	return rows.AddRow(a.PK, a.SK, a.LSI, a.AthleteID, a.ContestID, a.ContestDate, string(a.Discipline), a.Points)
}

func expectLockedSelect(mock sqlmock.Sqlmock, item keys.Attrs, existing *keys.Attrs) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryLockChangeLog)).
		WithArgs(changeLogLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows(contestRowColumns())
	if existing != nil {
		rows = contestRow(rows, *existing)
	}
	mock.ExpectQuery(regexp.QuoteMeta(querySelectContestForUpdate)).
		WithArgs(item.PK, item.SK).
		WillReturnRows(rows)
}

func TestContestAdapter_PutInsertCapturesChange(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	r := sampleResult()
	item := keys.ToAttrs(r)

	expectLockedSelect(mock, item, nil)
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertContest)).
		WithArgs(item.PK, item.SK, item.LSI, "a1", "c1", r.ContestDate, "blind", 20, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(queryAppendChange)).
		WithArgs(sqlmock.AnyArg(), "INSERT", sqlmock.AnyArg(), nil, sqlmock.AnyArg(), fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(5)))
	mock.ExpectCommit()

	require.NoError(t, adapter.Put(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_PutModifyCarriesOldImage(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	r := sampleResult()
	item := keys.ToAttrs(r)
	previous := item
	previous.Points = 10
	oldImage, err := keys.MarshalImage(v1.ContestResult{
		AthleteID: "a1", ContestID: "c1", ContestDate: r.ContestDate, ContestDiscipline: category.DisciplineBlind, Points: 10,
	})
	require.NoError(t, err)

	expectLockedSelect(mock, item, &previous)
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertContest)).
		WithArgs(item.PK, item.SK, item.LSI, "a1", "c1", r.ContestDate, "blind", 20, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(queryAppendChange)).
		WithArgs(sqlmock.AnyArg(), "MODIFY", sqlmock.AnyArg(), []byte(oldImage), sqlmock.AnyArg(), fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(6)))
	mock.ExpectCommit()

	require.NoError(t, adapter.Put(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_PutUnchangedWritesNothing(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	r := sampleResult()
	item := keys.ToAttrs(r)

	expectLockedSelect(mock, item, &item)
	mock.ExpectCommit()

	require.NoError(t, adapter.Put(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_PutFailureIsPersistenceError(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	r := sampleResult()
	item := keys.ToAttrs(r)

	expectLockedSelect(mock, item, nil)
	mock.ExpectExec(regexp.QuoteMeta(queryUpsertContest)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := adapter.Put(context.Background(), r)
	require.True(t, storage.IsPersistence(err))
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.ErrorContains(t, err, "contests.put")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_Delete(t *testing.T) {
	t.Run("existing row emits remove", func(t *testing.T) {
		adapter, mock, db := newMockContestAdapter(t)
		defer db.Close()

		item := keys.ToAttrs(sampleResult())

		expectLockedSelect(mock, item, &item)
		mock.ExpectExec(regexp.QuoteMeta(queryDeleteContest)).
			WithArgs(item.PK, item.SK).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(queryAppendChange)).
			WithArgs(sqlmock.AnyArg(), "REMOVE", sqlmock.AnyArg(), sqlmock.AnyArg(), nil, fixedNow).
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(7)))
		mock.ExpectCommit()

		require.NoError(t, adapter.Delete(context.Background(), "a1", 2023, category.DisciplineBlind, "c1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is a no-op", func(t *testing.T) {
		adapter, mock, db := newMockContestAdapter(t)
		defer db.Close()

		item := keys.ToAttrs(sampleResult())

		expectLockedSelect(mock, item, nil)
		mock.ExpectCommit()

		require.NoError(t, adapter.Delete(context.Background(), "a1", 2023, category.DisciplineBlind, "c1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContestAdapter_QueryFirstPageReturnsToken(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	prefix := keys.Prefix(2023, category.DisciplineBlind)
	newer := keys.ToAttrs(v1.ContestResult{AthleteID: "a1", ContestID: "c2", ContestDate: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC).Unix(), ContestDiscipline: "blind", Points: 5})
	older := keys.ToAttrs(v1.ContestResult{AthleteID: "a1", ContestID: "c1", ContestDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), ContestDiscipline: "blind", Points: 3})

	rows := sqlmock.NewRows(contestRowColumns())
	rows = contestRow(rows, newer)
	rows = contestRow(rows, older)
	mock.ExpectQuery(regexp.QuoteMeta(queryContestsFirstPage)).
		WithArgs("ATHLETE#a1", prefix, keys.PrefixUpperBound(prefix), 2).
		WillReturnRows(rows).
		RowsWillBeClosed()

	page, err := adapter.QueryByAthleteYearDiscipline(context.Background(), "a1", 2023, category.DisciplineBlind, 2, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "c2", page.Items[0].ContestID)
	require.Equal(t, "c1", page.Items[1].ContestID)
	require.Equal(t, keys.EncodeToken(keys.CursorOf(older)), page.Next)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_QueryResumesAfterCursor(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	prefix := keys.Prefix(2023, category.DisciplineBlind)
	last := keys.ToAttrs(sampleResult())
	token := keys.EncodeToken(keys.CursorOf(last))

	mock.ExpectQuery(regexp.QuoteMeta(queryContestsAfterCursor)).
		WithArgs("ATHLETE#a1", prefix, keys.PrefixUpperBound(prefix), last.LSI, last.SK, storage.DefaultPageLimit).
		WillReturnRows(sqlmock.NewRows(contestRowColumns())).
		RowsWillBeClosed()

	page, err := adapter.QueryByAthleteYearDiscipline(context.Background(), "a1", 2023, category.DisciplineBlind, 0, token)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Empty(t, page.Next)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContestAdapter_QueryRejectsTokenFromOtherRange(t *testing.T) {
	adapter, mock, db := newMockContestAdapter(t)
	defer db.Close()

	token := keys.EncodeToken(keys.CursorOf(keys.ToAttrs(sampleResult())))

	_, err := adapter.QueryByAthleteYearDiscipline(context.Background(), "a1", 2024, category.DisciplineBlind, 10, token)
	require.ErrorIs(t, err, keys.ErrInvalidToken)
	require.NoError(t, mock.ExpectationsWereMet())
}
