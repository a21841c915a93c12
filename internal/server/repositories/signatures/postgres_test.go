package signatures

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

var signatureCols = []string{"id", "meeting_id", "signed_by", "role", "signed_at", "uid", "full_name", "username", "email", "urole"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReloadsWithSigner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+signatures\s*\(meeting_id,\s*signed_by,\s*role\)`).
		WithArgs(int64(1), int64(2), "Chairman").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`(?s)FROM\s+signatures\s+s\s+JOIN\s+users\s+u.*WHERE\s+s\.id\s*=\s*\$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(signatureCols).
			AddRow(5, 1, 2, "Chairman", time.Now(), 2, "Bob President", "president", "president@club.com", "Chairman"))

	got, err := repo.Create(context.Background(), &models.Signature{MeetingID: 1, SignedBy: 2, Role: "Chairman"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.Signer == nil || got.Signer.Username != "president" {
		t.Fatalf("unexpected signature: %+v", got)
	}
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+signatures`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "signatures_meeting_signer_role_key"})

	_, err := repo.Create(context.Background(), &models.Signature{MeetingID: 1, SignedBy: 2, Role: "Chairman"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs(int64(1), int64(2), "Chairman").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 1, 2, "Chairman")
	if err != nil || !ok {
		t.Fatalf("Exists: got %v, err %v", ok, err)
	}
}

func TestUpdateRole_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+signatures\s+SET\s+role`).
		WithArgs(int64(9), "Chairman").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateRole(context.Background(), 9, "Chairman"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
