package projecttech

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// Repository manages the technologies a project is tagged with.
type Repository interface {
	ListByProject(ctx context.Context, projectID string) ([]models.Technology, error)
	Add(ctx context.Context, projectID string, technologyIDs []string) (int, error)
	// Replace must run inside a transaction.
	Replace(ctx context.Context, projectID string, technologyIDs []string) (int, error)
	Remove(ctx context.Context, projectID, technologyID string) error
}
