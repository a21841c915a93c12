package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "no rows", in: sql.ErrNoRows, want: common.ErrorNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", sql.ErrNoRows), want: common.ErrorNotFound},
		{name: "unique", in: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, want: common.ErrorConflict},
		{name: "foreign key", in: &pgconn.PgError{Code: "23503"}, want: common.ErrorInvalidReference},
		{name: "check", in: &pgconn.PgError{Code: "23514"}, want: common.ErrorValidation},
		{name: "bad uuid", in: fmt.Errorf("query: %w", &pgconn.PgError{Code: "22P02"}), want: common.ErrorValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ClassifyError(tt.in), tt.want)
		})
	}
}

func TestClassifyError_Passthrough(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))

	base := errors.New("connection reset")
	err := ClassifyError(base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "db error")
}

func TestClassifyError_MalformedIdentifierDetail(t *testing.T) {
	err := ClassifyError(&pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`})
	assert.Equal(t, "malformed identifier", common.Detail(err, common.ErrorValidation))
	assert.NotContains(t, err.Error(), "abc")
}
