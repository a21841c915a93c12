package timeline

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryCols = []string{"id", "project_id", "title", "description", "occurred_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByProject_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)FROM\s+project_timeline.*ORDER\s+BY\s+occurred_at\s+DESC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(entryCols).
			AddRow("e2", "p1", "Launch", "", later).
			AddRow("e1", "p1", "Kickoff", "", earlier))

	got, err := repo.ListByProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Date.After(got[1].Date))
}

func TestCreate_UnknownProject(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT\s+INTO\s+project_timeline`).
		WithArgs("e1", "ghost", "Launch", "", when).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), &models.TimelineEntry{ID: "e1", ProjectID: "ghost", Title: "Launch", Date: when})
	assert.ErrorIs(t, err, common.ErrorInvalidReference)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+project_timeline`).WithArgs("e9").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "e9"), common.ErrorNotFound)
}
