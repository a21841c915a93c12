package technologies

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// Repository stores technologies and the optional skill rating each one
// carries.
type Repository interface {
	Create(ctx context.Context, t *models.Technology) (*models.Technology, error)
	GetByID(ctx context.Context, id string) (*models.Technology, error)
	// List returns technologies by name, descending, filtered by category
	// when category is non-nil.
	List(ctx context.Context, category *string) ([]models.Technology, error)
	Update(ctx context.Context, t *models.Technology) (*models.Technology, error)
	Delete(ctx context.Context, id string) error
	UpsertSkill(ctx context.Context, s *models.Skill) (*models.Skill, error)
}
