package admin

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	calls int
	err   error
}

func (f *fakeMigrator) RunMigrations(context.Context, *sql.DB) error {
	f.calls++
	return f.err
}

type fakeUsers struct {
	nextID int64
	got    []services.RegisterInput
	err    error
}

func (f *fakeUsers) Create(_ context.Context, in services.RegisterInput) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	f.got = append(f.got, in)
	return &models.User{ID: f.nextID, FullName: in.FullName, Username: in.Username, Email: in.Email, Role: in.Role, IsActive: true}, nil
}

func newTestApp(input string) (*App, *fakeMigrator, *fakeUsers, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	m := &fakeMigrator{}
	u := &fakeUsers{}
	var out bytes.Buffer
	return &App{
		config:   cfg,
		migrator: m,
		users:    u,
		seeder:   &Seeder{},
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, m, u, &out
}

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more answers")
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

func TestRun_Migrate(t *testing.T) {
	app, m, _, out := newTestApp("")

	require.NoError(t, app.Run(context.Background(), []string{"migrate"}))
	assert.Equal(t, 1, m.calls)
	assert.Contains(t, out.String(), "Migrations applied")

	m.err = errors.New("no database")
	err := app.Run(context.Background(), []string{"migrate"})
	assert.ErrorContains(t, err, "migrate: no database")
}

func TestRun_UnknownAndMissingCommand(t *testing.T) {
	app, _, _, out := newTestApp("")

	assert.Error(t, app.Run(context.Background(), nil))
	assert.ErrorContains(t, app.Run(context.Background(), []string{"drop"}), `unknown command "drop"`)
	assert.Contains(t, out.String(), "usage: admin")

	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "create-user")
}

func TestCreateUser_PromptsAndDefaultsRole(t *testing.T) {
	app, _, u, out := newTestApp("Ada Lovelace\nada@example.com\n\n\n")
	stubPasswords(t, "s3cret", "s3cret")

	require.NoError(t, app.Run(context.Background(), []string{"create-user"}))

	require.Len(t, u.got, 1)
	assert.Equal(t, services.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cret",
		Role:     "admin",
	}, u.got[0])
	assert.Contains(t, out.String(), "with role admin")
	assert.NotContains(t, out.String(), "s3cret")
}

func TestCreateUser_GeneratesPassword(t *testing.T) {
	app, _, u, out := newTestApp("Ada\nada@example.com\nada\nmember\n")
	stubPasswords(t, "")

	require.NoError(t, app.Run(context.Background(), []string{"create-user"}))

	require.Len(t, u.got, 1)
	assert.Len(t, u.got[0].Password, generatedPasswordBytes*2)
	assert.Equal(t, "member", u.got[0].Role)
	assert.Contains(t, out.String(), "Generated password: "+u.got[0].Password)
}

func TestCreateUser_PasswordMismatch(t *testing.T) {
	app, _, u, _ := newTestApp("Ada\nada@example.com\n\n\n")
	stubPasswords(t, "one", "two")

	err := app.Run(context.Background(), []string{"create-user"})
	assert.ErrorIs(t, err, errPasswordMismatch)
	assert.Empty(t, u.got)
}

func TestCreateUser_ServiceError(t *testing.T) {
	app, _, u, _ := newTestApp("Ada\nada@example.com\n\n\n")
	u.err = common.ErrorConflict
	stubPasswords(t, "pw", "pw")

	err := app.Run(context.Background(), []string{"create-user"})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestCreateUser_InputEnds(t *testing.T) {
	app, _, _, _ := newTestApp("")

	err := app.Run(context.Background(), []string{"create-user"})
	assert.Error(t, err)
}
