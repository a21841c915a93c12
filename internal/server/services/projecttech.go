package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type ProjectTechService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewProjectTechService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProjectTechService {
	return &ProjectTechService{db: db, repomanager: m, config: cfg}
}

// List returns the project's technologies with their skill rating and icon.
func (s *ProjectTechService) List(ctx context.Context, projectID string) ([]models.Technology, error) {
	techs, err := s.repomanager.ProjectTech(s.db).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := attachIcons(ctx, s.repomanager, s.db, techs); err != nil {
		return nil, err
	}
	return techs, nil
}

// Add tags the project with more technologies in one statement.
func (s *ProjectTechService) Add(ctx context.Context, projectID string, technologyIDs []string) (int, error) {
	if len(technologyIDs) == 0 {
		return 0, invalidf("technologyIds must be a non-empty array")
	}
	n, err := s.repomanager.ProjectTech(s.db).Add(ctx, projectID, technologyIDs)
	return n, techLinkError(err)
}

// Sync replaces the project's technologies atomically. An id listed twice
// fails the whole sync with a conflict.
func (s *ProjectTechService) Sync(ctx context.Context, projectID string, technologyIDs []string) (int, error) {
	var n int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		var err error
		n, err = s.repomanager.ProjectTech(tx).Replace(ctx, projectID, technologyIDs)
		return err
	})
	if err != nil {
		return 0, techLinkError(err)
	}
	return n, nil
}

func (s *ProjectTechService) Remove(ctx context.Context, projectID, technologyID string) error {
	return s.repomanager.ProjectTech(s.db).Remove(ctx, projectID, technologyID)
}

func techLinkError(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidReference):
		return invalidf("unknown project or technology id")
	case errors.Is(err, common.ErrorConflict):
		return conflict("technology is linked more than once")
	}
	return err
}

func attachIcons(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, techs []models.Technology) error {
	var ids []string
	for _, t := range techs {
		if t.IconID != nil {
			ids = append(ids, *t.IconID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	assets, err := rm.Media(db).ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]models.MediaAsset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	for i := range techs {
		if techs[i].IconID == nil {
			continue
		}
		if a, ok := byID[*techs[i].IconID]; ok {
			techs[i].Icon = &a
		}
	}
	return nil
}
