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
	"github.com/google/uuid"
)

type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewContentService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ContentService {
	return &ContentService{db: db, repomanager: m, config: cfg}
}

// ListByPage returns the page's blocks by section, each with its gallery.
func (s *ContentService) ListByPage(ctx context.Context, page string) ([]models.PageContent, error) {
	repo := s.repomanager.Content(s.db)
	blocks, err := repo.ListByPage(ctx, page)
	if err != nil {
		return nil, err
	}
	for i := range blocks {
		if blocks[i].Images, err = repo.Images(ctx, blocks[i].ID); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

func (s *ContentService) GetByKey(ctx context.Context, key string) (*models.PageContent, error) {
	repo := s.repomanager.Content(s.db)
	c, err := repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if c.Images, err = repo.Images(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

// Save upserts the block by key and replaces its gallery with mediaIDs, in
// order, in one transaction. A nil mediaIDs leaves the gallery untouched.
func (s *ContentService) Save(ctx context.Context, c models.PageContent, mediaIDs []string) (*models.PageContent, error) {
	if err := requireFields(field{"key", c.Key}, field{"page", c.Page}); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()

	var out *models.PageContent
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Content(tx)
		saved, err := repo.Upsert(ctx, &c)
		if err != nil {
			return err
		}
		if mediaIDs != nil {
			if _, err := repo.ReplaceImages(ctx, saved.ID, mediaIDs); err != nil {
				return err
			}
		}
		if saved.Images, err = repo.Images(ctx, saved.ID); err != nil {
			return err
		}
		out = saved
		return nil
	})
	switch {
	case errors.Is(err, common.ErrorInvalidReference):
		return nil, invalidf("mediaIds contains an unknown media asset")
	case errors.Is(err, common.ErrorConflict):
		return nil, conflict("mediaIds lists a media asset more than once")
	case err != nil:
		return nil, err
	}
	return out, nil
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Content(s.db).Delete(ctx, id)
}
