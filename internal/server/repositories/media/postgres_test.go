package media

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mediaCols = []string{"id", "storage_key", "url", "file_name", "mime_type", "alt_text", "size_bytes", "created_at"}

// stringSlices lets []string arguments through, the way pgx accepts them
// for array parameters.
type stringSlices struct{}

func (stringSlices) ConvertValue(v any) (driver.Value, error) {
	if s, ok := v.([]string); ok {
		return s, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(stringSlices{}),
	)
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	in := &models.MediaAsset{ID: "m1", StorageKey: "media/m1-a.png", URL: "http://cdn/a.png", FileName: "a.png", MimeType: "image/png", SizeBytes: 12}

	mock.ExpectQuery(`INSERT\s+INTO\s+media_assets`).
		WithArgs("m1", "media/m1-a.png", "http://cdn/a.png", "a.png", "image/png", "", int64(12)).
		WillReturnRows(sqlmock.NewRows(mediaCols).AddRow("m1", "media/m1-a.png", "http://cdn/a.png", "a.png", "image/png", "", 12, now))

	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`WHERE\s+id\s*=\s*ANY\(\$1::uuid\[\]\)`).
		WithArgs([]string{"m1", "m2"}).
		WillReturnRows(sqlmock.NewRows(mediaCols).
			AddRow("m2", "", "http://cdn/b", "b", "", "", 0, now).
			AddRow("m1", "", "http://cdn/a", "a", "", "", 0, now))

	got, err := repo.ListByIDs(context.Background(), []string{"m1", "m2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	got, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+media_assets\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+media_assets`).WithArgs("m1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+media_assets`).WithArgs("m2").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "m1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "m2"), common.ErrorNotFound)
}
