package projects

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

var projectCols = []string{"id", "title", "slug", "summary", "description", "main_thumbnail_id", "view_count", "is_featured", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+projects`).
		WithArgs("p1", "Site", "site", "", "", nil, false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Project{ID: "p1", Title: "Site", Slug: "site"})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestIncrementViews(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE\s+projects\s+SET\s+view_count\s*=\s*view_count\s*\+\s*1\s+WHERE\s+slug\s*=\s*\$1`).
		WithArgs("site").
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow("p1", "Site", "site", "", "", nil, 8, false, now, now))

	got, err := repo.IncrementViews(context.Background(), "site")
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ViewCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViews_UnknownSlug(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+projects`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.IncrementViews(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByThumbnail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	thumb := "m1"
	mock.ExpectQuery(`WHERE\s+main_thumbnail_id\s*=\s*\$1`).
		WithArgs(thumb).
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow("p1", "Site", "site", "", "", thumb, 0, true, now, now))

	got, err := repo.FindByThumbnail(context.Background(), thumb)
	require.NoError(t, err)
	assert.Equal(t, "Site", got.Title)
	require.NotNil(t, got.MainThumbnailID)
	assert.Equal(t, thumb, *got.MainThumbnailID)
}

func TestList_Order(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+projects\s+ORDER\s+BY\s+created_at\s+DESC`).
		WillReturnRows(sqlmock.NewRows(projectCols))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate_TouchesUpdatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)UPDATE\s+projects.*updated_at\s*=\s*NOW\(\)`).
		WithArgs("p1", "New", "new", "s", "d", nil, true).
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow("p1", "New", "new", "s", "d", nil, 3, true, now, now))

	got, err := repo.Update(context.Background(), &models.Project{ID: "p1", Title: "New", Slug: "new", Summary: "s", Description: "d", IsFeatured: true})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Slug)
}
