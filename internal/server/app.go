// Package server wires configuration, the database, the services and both
// listeners (REST API and gRPC health) into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/logging"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/minutesfolio/internal/server/rest"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"

	gs "github.com/dmitrijs2005/minutesfolio/internal/server/grpc"
)

const healthCheckInterval = 10 * time.Second

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   runner
	health runner
}

// NewServices builds every service on top of db and m and returns them in
// the shape the router mounts.
func NewServices(db *sql.DB, m repomanager.RepositoryManager, c *config.Config, storage services.ObjectStorage) rest.Services {
	return rest.Services{
		Auth:        services.NewAuthService(db, m, c),
		Users:       services.NewUserService(db, m, c),
		Meetings:    services.NewMeetingService(db, m, c),
		Attendees:   services.NewAttendeeService(db, m, c),
		Topics:      services.NewTopicService(db, m, c),
		Signatures:  services.NewSignatureService(db, m, c),
		Projects:    services.NewProjectService(db, m, c),
		Links:       services.NewLinkService(db, m, c),
		ProjectTech: services.NewProjectTechService(db, m, c),
		Media:       services.NewMediaService(db, m, c, storage),
		Sections:    services.NewSectionService(db, m, c),
		Timeline:    services.NewTimelineService(db, m, c),
		TechSkills:  services.NewTechSkillService(db, m, c),
		Catalog:     services.NewCatalogService(db, m, c),
		Settings:    services.NewSettingService(db, m, c),
		Content:     services.NewContentService(db, m, c),
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewJSON(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	m := repomanager.NewPostgresRepositoryManager()

	if c.AutoMigrate {
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	svc := NewServices(db, m, c, services.NewS3Storage(c))
	router := rest.NewRouter(c, logger, svc, rest.NewMetrics(), db)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   rest.NewServer(c.HTTPAddr, router, logger),
		health: gs.NewHealthServer(c.GRPCHealthAddr, logger, db, healthCheckInterval),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// start runs r until ctx is done. A listener that fails takes the whole
// app down with it.
func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "listener stopped", "listener", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "http", app.config.HTTPAddr, "grpc_health", app.config.GRPCHealthAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", app.http)
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc_health", app.health)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(context.Background(), "db close", "error", err)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
}
