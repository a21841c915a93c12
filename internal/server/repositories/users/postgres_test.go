package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

var userCols = []string{"id", "full_name", "username", "email", "password_hash", "role", "is_active", "created_at"}

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

	q := `(?s)^INSERT\s+INTO\s+users\s*\(full_name,\s*username,\s*email,\s*password_hash,\s*role,\s*is_active\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,`

	created := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs("Alice Secretary", "secretary", "secretary@club.com", "$2a$hash", "Secretary General", true).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "Alice Secretary", "secretary", "secretary@club.com", "$2a$hash", "Secretary General", true, created))

	got, err := repo.Create(context.Background(), &models.User{
		FullName: "Alice Secretary", Username: "secretary", Email: "secretary@club.com",
		PasswordHash: "$2a$hash", Role: "Secretary General", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 || got.Username != "secretary" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)$`

	mock.ExpectQuery(q).
		WithArgs("A@x.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(7, "A", "a", "a@x.com", "h", "member", true, time.Now()))

	got, err := repo.GetByEmail(context.Background(), "A@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 7 || got.PasswordHash != "h" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+username\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_OrderedByIDDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+ORDER\s+BY\s+id\s+DESC`).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(2, "B", "b", "b@x.com", "h", "Chairman", true, time.Now()).
			AddRow(1, "A", "a", "a@x.com", "h", "member", false, time.Now()))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].IsActive {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestUpdate_WritesMutableFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+full_name\s*=\s*\$2,\s*password_hash\s*=\s*\$3,\s*role\s*=\s*\$4,\s*is_active\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$1`

	mock.ExpectQuery(q).
		WithArgs(int64(3), "New Name", "h2", "Chairman", false).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, "New Name", "c", "c@x.com", "h2", "Chairman", false, time.Now()))

	got, err := repo.Update(context.Background(), &models.User{ID: 3, FullName: "New Name", PasswordHash: "h2", Role: "Chairman"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.FullName != "New Name" || got.Role != "Chairman" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestToggleActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+users\s+SET\s+is_active\s*=\s*NOT\s+is_active`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "E", "e", "e@x.com", "h", "member", false, time.Now()))

	got, err := repo.ToggleActive(context.Background(), 5)
	if err != nil {
		t.Fatalf("ToggleActive error: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected inactive user, got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 9); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
