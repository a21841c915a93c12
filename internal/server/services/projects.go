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

type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProjectService {
	return &ProjectService{db: db, repomanager: m, config: cfg}
}

// List returns every project, newest first, with thumbnail and techs.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	ps, err := s.repomanager.Projects(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ps {
		if err := s.decorate(ctx, s.db, &ps[i], true); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

// GetBySlug counts a view and returns the project as it is afterwards.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	p, err := s.repomanager.Projects(s.db).IncrementViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, s.db, p, true); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the project with every owned collection: links, techs,
// sections in order with their media, and the timeline newest first.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.ProjectDetails, error) {
	var out models.ProjectDetails
	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.repomanager.Projects(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.decorate(ctx, tx, p, true); err != nil {
			return err
		}
		out.Project = *p

		if out.Links, err = s.repomanager.Links(tx).ListByProject(ctx, id); err != nil {
			return err
		}
		if out.Sections, err = s.repomanager.Sections(tx).ListByProject(ctx, id); err != nil {
			return err
		}
		if err := attachSectionMedia(ctx, s.repomanager, tx, out.Sections); err != nil {
			return err
		}
		out.Timeline, err = s.repomanager.Timeline(tx).ListByProject(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWithThumbnail returns the bare project and its thumbnail.
func (s *ProjectService) GetWithThumbnail(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.repomanager.Projects(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, s.db, p, false); err != nil {
		return nil, err
	}
	return p, nil
}

// Create stores a project. An empty slug is derived from the title.
func (s *ProjectService) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := requireFields(field{"title", p.Title}); err != nil {
		return nil, err
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	} else if !slug.IsSlug(p.Slug) {
		return nil, invalidf("slug %q is not a valid slug", p.Slug)
	}
	p.ID = uuid.NewString()
	p.ViewCount = 0

	out, err := s.repomanager.Projects(s.db).Create(ctx, &p)
	return out, projectError(err)
}

func (s *ProjectService) Update(ctx context.Context, id string, pp models.ProjectPatch) (*models.Project, error) {
	if pp.Title != nil && strings.TrimSpace(*pp.Title) == "" {
		return nil, invalidf("title cannot be empty")
	}
	if pp.Slug != nil && !slug.IsSlug(*pp.Slug) {
		return nil, invalidf("slug %q is not a valid slug", *pp.Slug)
	}

	var out *models.Project
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Projects(tx)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&p.Title, pp.Title)
		apply(&p.Slug, pp.Slug)
		apply(&p.Summary, pp.Summary)
		apply(&p.Description, pp.Description)
		if pp.MainThumbnailID != nil {
			p.MainThumbnailID = nilIfEmpty(*pp.MainThumbnailID)
		}
		apply(&p.IsFeatured, pp.IsFeatured)
		out, err = repo.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, projectError(err)
	}
	return out, nil
}

// Delete removes the project and, by cascade, its owned collections.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Projects(s.db).Delete(ctx, id)
}

func (s *ProjectService) decorate(ctx context.Context, db dbx.DBTX, p *models.Project, withTechs bool) error {
	if p.MainThumbnailID != nil {
		m, err := s.repomanager.Media(db).GetByID(ctx, *p.MainThumbnailID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		p.Thumbnail = m
	}
	if withTechs {
		techs, err := s.repomanager.ProjectTech(db).ListByProject(ctx, p.ID)
		if err != nil {
			return err
		}
		p.Technologies = techs
	}
	return nil
}

func attachSectionMedia(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, sections []models.ProjectSection) error {
	var ids []string
	for _, sec := range sections {
		if sec.MediaID != nil {
			ids = append(ids, *sec.MediaID)
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
	for i := range sections {
		if sections[i].MediaID == nil {
			continue
		}
		if a, ok := byID[*sections[i].MediaID]; ok {
			sections[i].Media = &a
		}
	}
	return nil
}

func projectError(err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return conflict("a project with this slug already exists")
	case errors.Is(err, common.ErrorInvalidReference):
		return invalidf("mainThumbnailId does not reference a media asset")
	}
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
