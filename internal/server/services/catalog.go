package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CatalogService manages the services offered on the portfolio site.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CatalogService {
	return &CatalogService{db: db, repomanager: m, config: cfg}
}

// List returns services by title descending with icon and tech stack.
func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	svcs, err := s.repomanager.Catalog(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range svcs {
		if err := s.decorate(ctx, s.db, &svcs[i]); err != nil {
			return nil, err
		}
	}
	return svcs, nil
}

func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	svc, err := s.repomanager.Catalog(s.db).GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, s.db, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Create stores the service and links its technologies in one transaction.
func (s *CatalogService) Create(ctx context.Context, svc models.Service, technologyIDs []string) (*models.Service, error) {
	svc.Title = strings.TrimSpace(svc.Title)
	if err := requireFields(field{"title", svc.Title}); err != nil {
		return nil, err
	}
	if svc.Slug == "" {
		svc.Slug = slug.Make(svc.Title)
	} else if !slug.IsSlug(svc.Slug) {
		return nil, invalidf("slug %q is not a valid slug", svc.Slug)
	}
	svc.ID = uuid.NewString()

	var out *models.Service
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Catalog(tx)
		created, err := repo.Create(ctx, &svc)
		if err != nil {
			return err
		}
		if _, err := repo.AddTechnologies(ctx, created.ID, technologyIDs); err != nil {
			return err
		}
		if err := s.decorate(ctx, tx, created); err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}
	return out, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, p models.ServicePatch) (*models.Service, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return nil, invalidf("title cannot be empty")
	}
	if p.Slug != nil && !slug.IsSlug(*p.Slug) {
		return nil, invalidf("slug %q is not a valid slug", *p.Slug)
	}

	var out *models.Service
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Catalog(tx)
		svc, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&svc.Title, p.Title)
		apply(&svc.Slug, p.Slug)
		apply(&svc.Description, p.Description)
		if p.IconID != nil {
			svc.IconID = nilIfEmpty(*p.IconID)
		}
		out, err = repo.Update(ctx, svc)
		return err
	})
	if err != nil {
		return nil, catalogError(err)
	}
	return out, nil
}

// SyncTechnologies replaces the service's tech stack atomically.
func (s *CatalogService) SyncTechnologies(ctx context.Context, id string, technologyIDs []string) (int, error) {
	var n int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Catalog(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		var err error
		n, err = repo.ReplaceTechnologies(ctx, id, technologyIDs)
		return err
	})
	if err != nil {
		return 0, catalogError(err)
	}
	return n, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Catalog(s.db).Delete(ctx, id)
}

func (s *CatalogService) decorate(ctx context.Context, db dbx.DBTX, svc *models.Service) error {
	if svc.IconID != nil {
		m, err := s.repomanager.Media(db).GetByID(ctx, *svc.IconID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		svc.Icon = m
	}

	techs, err := s.repomanager.Catalog(db).ListTechnologies(ctx, svc.ID)
	if err != nil {
		return err
	}
	if err := attachIcons(ctx, s.repomanager, db, techs); err != nil {
		return err
	}
	svc.TechStack = techs
	return nil
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		if strings.HasPrefix(common.Detail(err, common.ErrorConflict), "service_technologies") {
			return conflict("technology is listed more than once")
		}
		return conflict("a service with this slug already exists")
	case errors.Is(err, common.ErrorInvalidReference):
		return invalidf("unknown technology or icon id")
	}
	return err
}
