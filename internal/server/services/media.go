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

type MediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	storage     ObjectStorage
}

func NewMediaService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, storage ObjectStorage) *MediaService {
	return &MediaService{db: db, repomanager: m, config: cfg, storage: storage}
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaAsset, error) {
	return s.repomanager.Media(s.db).List(ctx)
}

func (s *MediaService) Get(ctx context.Context, id string) (*models.MediaAsset, error) {
	return s.repomanager.Media(s.db).GetByID(ctx, id)
}

func (s *MediaService) GetMany(ctx context.Context, ids []string) ([]models.MediaAsset, error) {
	return s.repomanager.Media(s.db).ListByIDs(ctx, ids)
}

// Create registers asset metadata. The file itself is uploaded elsewhere,
// usually through an UploadURL ticket.
func (s *MediaService) Create(ctx context.Context, m models.MediaAsset) (*models.MediaAsset, error) {
	if err := requireFields(field{"url", m.URL}, field{"fileName", m.FileName}); err != nil {
		return nil, err
	}
	if m.SizeBytes < 0 {
		return nil, invalidf("sizeBytes cannot be negative")
	}
	m.ID = uuid.NewString()
	return s.repomanager.Media(s.db).Create(ctx, &m)
}

func (s *MediaService) Update(ctx context.Context, id string, p models.MediaAssetPatch) (*models.MediaAsset, error) {
	if p.URL != nil && *p.URL == "" {
		return nil, invalidf("url cannot be empty")
	}

	var out *models.MediaAsset
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Media(tx)
		m, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&m.URL, p.URL)
		apply(&m.FileName, p.FileName)
		apply(&m.MimeType, p.MimeType)
		apply(&m.AltText, p.AltText)
		apply(&m.SizeBytes, p.SizeBytes)
		out, err = repo.Update(ctx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete refuses assets still used as a project thumbnail.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	p, err := s.repomanager.Projects(s.db).FindByThumbnail(ctx, id)
	switch {
	case err == nil:
		return invalidf("Cannot delete. Asset is being used by project: %s", p.Title)
	case !errors.Is(err, common.ErrorNotFound):
		return err
	}

	err = s.repomanager.Media(s.db).Delete(ctx, id)
	if errors.Is(err, common.ErrorInvalidReference) {
		return invalidf("Cannot delete. Asset is still in use")
	}
	return err
}

// UploadURL reserves a storage key and presigns a PUT for it.
func (s *MediaService) UploadURL(ctx context.Context, fileName, mimeType string) (*models.UploadTicket, error) {
	if err := requireFields(field{"fileName", fileName}); err != nil {
		return nil, err
	}

	key := NewStorageKey(fileName)
	url, expires, err := s.storage.PresignUpload(ctx, key, mimeType)
	if err != nil {
		return nil, err
	}

	return &models.UploadTicket{StorageKey: key, UploadURL: url, ExpiresAt: expires}, nil
}

// DownloadURL presigns a GET for a stored asset. Assets registered with an
// external URL and no storage key return that URL.
func (s *MediaService) DownloadURL(ctx context.Context, id string) (string, error) {
	m, err := s.repomanager.Media(s.db).GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if m.StorageKey == "" {
		return m.URL, nil
	}
	return s.storage.PresignDownload(ctx, m.StorageKey)
}
