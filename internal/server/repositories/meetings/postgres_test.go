package meetings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var meetingCols = []string{"id", "title", "date", "created_by", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2025, 9, 12, 16, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+meetings\s*\(title,\s*date,\s*created_by\)`).
		WithArgs("First Club Meeting", date, int64(1)).
		WillReturnRows(sqlmock.NewRows(meetingCols).AddRow(10, "First Club Meeting", date, 1, time.Now()))

	got, err := repo.Create(context.Background(), &models.Meeting{Title: "First Club Meeting", Date: date, CreatedBy: 1})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 || !got.Date.Equal(date) {
		t.Fatalf("unexpected meeting: %+v", got)
	}
}

func TestCreate_UnknownCreator(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+meetings`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "meetings_created_by_fkey"})

	_, err := repo.Create(context.Background(), &models.Meeting{Title: "x", CreatedBy: 99})
	if !errors.Is(err, common.ErrorInvalidReference) {
		t.Fatalf("want common.ErrorInvalidReference, got %v", err)
	}
}

func TestList_OrderedByDateDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+meetings\s+ORDER\s+BY\s+date\s+DESC`).
		WillReturnRows(sqlmock.NewRows(meetingCols).
			AddRow(2, "Later", time.Now(), 1, time.Now()).
			AddRow(1, "Earlier", time.Now().Add(-time.Hour), 1, time.Now()))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Later" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+meetings\s+WHERE\s+id\s*=\s*\$1`).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 5); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE\s+meetings\s+SET\s+title\s*=\s*\$2,\s*date\s*=\s*\$3`).
		WithArgs(int64(3), "Renamed", date).
		WillReturnRows(sqlmock.NewRows(meetingCols).AddRow(3, "Renamed", date, 1, time.Now()))
	mock.ExpectExec(`DELETE\s+FROM\s+meetings\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Update(context.Background(), &models.Meeting{ID: 3, Title: "Renamed", Date: date})
	if err != nil || got.Title != "Renamed" {
		t.Fatalf("Update: got %+v, err %v", got, err)
	}
	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
