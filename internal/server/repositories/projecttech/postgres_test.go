package projecttech

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var techCols = []string{"id", "name", "category", "icon_id", "technology_id", "proficiency", "years_experience"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByProject(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)JOIN\s+project_technologies\s+pt.*WHERE\s+pt\.project_id\s*=\s*\$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(techCols).AddRow("t1", "Go", "backend", nil, "t1", 90, 6))

	got, err := repo.ListByProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Skill)
	assert.Equal(t, 6, got[0].Skill.YearsExperience)
}

func TestAdd_SingleStatement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_technologies (project_id, technology_id) VALUES ($1, $2), ($3, $4)`)).
		WithArgs("p1", "t1", "p1", "t2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.Add(context.Background(), "p1", []string{"t1", "t2"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_UnknownTechnology(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+project_technologies`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Add(context.Background(), "p1", []string{"ghost"})
	assert.ErrorIs(t, err, common.ErrorInvalidReference)
}

func TestReplace_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	for i := 0; i < 2; i++ {
		mock.ExpectExec(`DELETE\s+FROM\s+project_technologies\s+WHERE\s+project_id\s*=\s*\$1`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_technologies (project_id, technology_id) VALUES ($1, $2)`)).
			WithArgs("p1", "t1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	for i := 0; i < 2; i++ {
		n, err := repo.Replace(context.Background(), "p1", []string{"t1"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemove_NotLinked(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+project_technologies`).
		WithArgs("p1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Remove(context.Background(), "p1", "t1"), common.ErrorNotFound)
}
