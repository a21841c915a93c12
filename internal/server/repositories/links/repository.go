package links

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.ProjectLink) (*models.ProjectLink, error)
	GetByID(ctx context.Context, id string) (*models.ProjectLink, error)
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectLink, error)
	Update(ctx context.Context, l *models.ProjectLink) (*models.ProjectLink, error)
	Delete(ctx context.Context, id string) error
	// Replace swaps the links of a project for links, in list order. It
	// must run inside a transaction.
	Replace(ctx context.Context, projectID string, links []models.ProjectLink) (int, error)
}
