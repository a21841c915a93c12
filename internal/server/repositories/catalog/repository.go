// Package catalog stores the services offered on the portfolio site and
// the technologies each one is built with.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Service) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetBySlug(ctx context.Context, slug string) (*models.Service, error)
	// List returns services by title, descending.
	List(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, s *models.Service) (*models.Service, error)
	Delete(ctx context.Context, id string) error

	ListTechnologies(ctx context.Context, serviceID string) ([]models.Technology, error)
	AddTechnologies(ctx context.Context, serviceID string, technologyIDs []string) (int, error)
	// ReplaceTechnologies must run inside a transaction.
	ReplaceTechnologies(ctx context.Context, serviceID string, technologyIDs []string) (int, error)
}
