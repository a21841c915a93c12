// Package admin implements the operator commands of cmd/admin: schema
// migration, interactive user creation and demo data seeding.
package admin

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
)

const usage = `usage: admin [flags] <command>

commands:
  migrate       apply pending database migrations
  create-user   create an active user, prompting for the password
  seed          insert two officers and a sample meeting
  help          show this message

flags are the server flags, e.g. -d <dsn>`

// Migrator applies the embedded schema migrations.
type Migrator interface {
	RunMigrations(context.Context, *sql.DB) error
}

type App struct {
	config   *config.Config
	db       *sql.DB
	migrator Migrator
	users    UserCreator
	seeder   *Seeder
	in       *bufio.Reader
	out      io.Writer
}

// NewApp binds the commands to db. Users and seed data go through the
// same services the API uses, so validation and hashing are shared.
func NewApp(c *config.Config, db *sql.DB, m repomanager.RepositoryManager, in io.Reader, out io.Writer) *App {
	users := services.NewUserService(db, m, c)
	return &App{
		config:   c,
		db:       db,
		migrator: m,
		users:    users,
		seeder: &Seeder{
			Users:      users,
			Meetings:   services.NewMeetingService(db, m, c),
			Attendees:  services.NewAttendeeService(db, m, c),
			Topics:     services.NewTopicService(db, m, c),
			Signatures: services.NewSignatureService(db, m, c),
		},
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "migrate":
		if err := a.migrator.RunMigrations(ctx, a.db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(a.out, "Migrations applied")
		return nil
	case "create-user":
		return a.createUser(ctx)
	case "seed":
		res, err := a.seeder.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Fprintf(a.out, "Seeded meeting %d with %d users, %d attendees, %d topics, %d signatures\n",
			res.MeetingID, res.Users, res.Attendees, res.Topics, res.Signatures)
		return nil
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
