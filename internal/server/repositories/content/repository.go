// Package content stores keyed text blocks of the site pages and the
// ordered image gallery attached to each block.
package content

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	ListByPage(ctx context.Context, page string) ([]models.PageContent, error)
	GetByKey(ctx context.Context, key string) (*models.PageContent, error)
	// Upsert inserts the block or, when its key already exists, overwrites
	// the stored one. The returned block carries the stored id.
	Upsert(ctx context.Context, c *models.PageContent) (*models.PageContent, error)
	Delete(ctx context.Context, id string) error

	Images(ctx context.Context, contentID string) ([]models.ContentImage, error)
	// ReplaceImages must run inside a transaction.
	ReplaceImages(ctx context.Context, contentID string, mediaIDs []string) (int, error)
}
