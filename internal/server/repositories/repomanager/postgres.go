// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/migrations"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/attendees"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/links"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/media"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/meetings"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/projecttech"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/sections"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/settings"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/signatures"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/technologies"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/timeline"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/topics"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Meetings(db dbx.DBTX) meetings.Repository {
	return meetings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attendees(db dbx.DBTX) attendees.Repository {
	return attendees.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Topics(db dbx.DBTX) topics.Repository {
	return topics.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Signatures(db dbx.DBTX) signatures.Repository {
	return signatures.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Media(db dbx.DBTX) media.Repository {
	return media.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Links(db dbx.DBTX) links.Repository {
	return links.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ProjectTech(db dbx.DBTX) projecttech.Repository {
	return projecttech.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sections(db dbx.DBTX) sections.Repository {
	return sections.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Timeline(db dbx.DBTX) timeline.Repository {
	return timeline.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Technologies(db dbx.DBTX) technologies.Repository {
	return technologies.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Catalog(db dbx.DBTX) catalog.Repository {
	return catalog.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Content(db dbx.DBTX) content.Repository {
	return content.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// OpenDB opens a pgx-backed connection pool for dsn and checks that the
// server answers.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
