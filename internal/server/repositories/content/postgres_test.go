package content

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contentCols = []string{"id", "page", "section", "key", "title", "value", "last_updated"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestUpsertWithGallery(t *testing.T) {
	_, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+page_content.*ON\s+CONFLICT\s+\(key\)\s+DO\s+UPDATE`).
		WithArgs("new-id", "home", "hero", "home.hero", "Hi", "Welcome").
		WillReturnRows(sqlmock.NewRows(contentCols).AddRow("stored-id", "home", "hero", "home.hero", "Hi", "Welcome", now))
	mock.ExpectExec(`DELETE\s+FROM\s+page_content_media\s+WHERE\s+content_id\s*=\s*\$1`).
		WithArgs("stored-id").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO page_content_media (content_id, media_id, display_order) VALUES ($1, $2, $3), ($4, $5, $6)`)).
		WithArgs("stored-id", "m2", 0, "stored-id", "m1", 1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewPostgresRepository(tx)
		c, err := repo.Upsert(ctx, &models.PageContent{ID: "new-id", Page: "home", Section: "hero", Key: "home.hero", Title: "Hi", Value: "Welcome"})
		if err != nil {
			return err
		}
		_, err = repo.ReplaceImages(ctx, c.ID, []string{"m2", "m1"})
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceImages_UnknownMedia(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+page_content_media`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT\s+INTO\s+page_content_media`).WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.ReplaceImages(context.Background(), "c1", []string{"ghost"})
	assert.ErrorIs(t, err, common.ErrorInvalidReference)
}

func TestImages_Ordered(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM\s+page_content_media\s+pcm\s+JOIN\s+media_assets.*ORDER\s+BY\s+pcm\.display_order`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"media_id", "display_order", "id", "storage_key", "url", "file_name", "mime_type", "alt_text", "size_bytes", "created_at"}).
			AddRow("m2", 0, "m2", "", "http://cdn/b", "b.png", "image/png", "", 1, now).
			AddRow("m1", 1, "m1", "", "http://cdn/a", "a.png", "image/png", "", 1, now))

	got, err := repo.Images(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].Media.ID)
	assert.Equal(t, 1, got[1].DisplayOrder)
}

func TestListByPage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+page_content\s+WHERE\s+page\s*=\s*\$1\s+ORDER\s+BY\s+section`).
		WithArgs("home").
		WillReturnRows(sqlmock.NewRows(contentCols))

	got, err := repo.ListByPage(context.Background(), "home")
	require.NoError(t, err)
	assert.Empty(t, got)
}
