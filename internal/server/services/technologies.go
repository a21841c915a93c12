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
)

// TechSkillUpdate carries optional changes to a technology and its skill.
type TechSkillUpdate struct {
	Tech  *models.TechnologyPatch
	Skill *models.SkillPatch
}

type TechSkillService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewTechSkillService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TechSkillService {
	return &TechSkillService{db: db, repomanager: m, config: cfg}
}

// List returns technologies by name descending, optionally one category,
// with skill and icon.
func (s *TechSkillService) List(ctx context.Context, category *string) ([]models.Technology, error) {
	techs, err := s.repomanager.Technologies(s.db).List(ctx, category)
	if err != nil {
		return nil, err
	}
	if err := attachIcons(ctx, s.repomanager, s.db, techs); err != nil {
		return nil, err
	}
	return techs, nil
}

// Create stores the technology and, when given, its skill in one
// transaction.
func (s *TechSkillService) Create(ctx context.Context, t models.Technology, skill *models.Skill) (*models.Technology, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := requireFields(field{"name", t.Name}); err != nil {
		return nil, err
	}
	if skill != nil {
		if err := checkSkill(skill.Proficiency, skill.YearsExperience); err != nil {
			return nil, err
		}
	}
	t.ID = uuid.NewString()

	var out *models.Technology
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Technologies(tx)
		if _, err := repo.Create(ctx, &t); err != nil {
			return err
		}
		if skill != nil {
			sk := *skill
			sk.TechnologyID = t.ID
			if _, err := repo.UpsertSkill(ctx, &sk); err != nil {
				return err
			}
		}
		var err error
		out, err = s.withIcon(ctx, tx, t.ID)
		return err
	})
	if err != nil {
		return nil, techError(err)
	}
	return out, nil
}

// Update applies both halves of u in one transaction. A skill patch on a
// technology without a skill creates one.
func (s *TechSkillService) Update(ctx context.Context, id string, u TechSkillUpdate) (*models.Technology, error) {
	if u.Tech != nil && u.Tech.Name != nil && strings.TrimSpace(*u.Tech.Name) == "" {
		return nil, invalidf("name cannot be empty")
	}

	var out *models.Technology
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Technologies(tx)
		t, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if u.Tech != nil {
			apply(&t.Name, u.Tech.Name)
			apply(&t.Category, u.Tech.Category)
			if u.Tech.IconID != nil {
				t.IconID = nilIfEmpty(*u.Tech.IconID)
			}
			if _, err := repo.Update(ctx, t); err != nil {
				return err
			}
		}

		if u.Skill != nil {
			sk := models.Skill{TechnologyID: id}
			if t.Skill != nil {
				sk = *t.Skill
			}
			apply(&sk.Proficiency, u.Skill.Proficiency)
			apply(&sk.YearsExperience, u.Skill.YearsExperience)
			if err := checkSkill(sk.Proficiency, sk.YearsExperience); err != nil {
				return err
			}
			if _, err := repo.UpsertSkill(ctx, &sk); err != nil {
				return err
			}
		}

		out, err = s.withIcon(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, techError(err)
	}
	return out, nil
}

// Delete removes the technology; its skill and links go with it.
func (s *TechSkillService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Technologies(s.db).Delete(ctx, id)
}

func (s *TechSkillService) withIcon(ctx context.Context, db dbx.DBTX, id string) (*models.Technology, error) {
	t, err := s.repomanager.Technologies(db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	one := []models.Technology{*t}
	if err := attachIcons(ctx, s.repomanager, db, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func checkSkill(proficiency, years int) error {
	if proficiency < 0 || proficiency > 100 {
		return invalidf("proficiency must be between 0 and 100")
	}
	if years < 0 {
		return invalidf("yearsExperience cannot be negative")
	}
	return nil
}

func techError(err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return conflict("a technology with this name already exists")
	case errors.Is(err, common.ErrorInvalidReference):
		return invalidf("iconId does not reference a media asset")
	}
	return err
}
