package sections

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.ProjectSection) (*models.ProjectSection, error)
	GetByID(ctx context.Context, id string) (*models.ProjectSection, error)
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectSection, error)
	Update(ctx context.Context, s *models.ProjectSection) (*models.ProjectSection, error)
	SetOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
}
