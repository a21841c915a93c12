package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/links"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/media"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/settings"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/signatures"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

// newMockDB returns a *sql.DB for services that open transactions. The
// fake repositories never touch it, so only Begin/Commit/Rollback are
// expected.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// newPostgresMock pairs a sqlmock handle with the postgres repositories, for
// services whose outcome depends on the statements run inside their
// transaction.
func newPostgresMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, repomanager.RepositoryManager) {
	t.Helper()
	db, mock := newMockDB(t)
	return db, mock, repomanager.NewPostgresRepositoryManager()
}

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeManager serves in-memory repositories. Calling a factory that a
// test did not set panics through the nil embedded interface.
type fakeManager struct {
	repomanager.RepositoryManager
	users      *fakeUsers
	signatures *fakeSignatures
	media      *fakeMedia
	projects   *fakeProjects
	links      *fakeLinks
	settings   *fakeSettings
}

func (m *fakeManager) Users(dbx.DBTX) users.Repository           { return m.users }
func (m *fakeManager) Signatures(dbx.DBTX) signatures.Repository { return m.signatures }
func (m *fakeManager) Media(dbx.DBTX) media.Repository           { return m.media }
func (m *fakeManager) Projects(dbx.DBTX) projects.Repository     { return m.projects }
func (m *fakeManager) Links(dbx.DBTX) links.Repository           { return m.links }
func (m *fakeManager) Settings(dbx.DBTX) settings.Repository     { return m.settings }

type fakeUsers struct {
	users.Repository
	byID   map[int64]*models.User
	nextID int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	for _, e := range f.byID {
		if e.Email == u.Email || e.Username == u.Username {
			return nil, common.ErrorConflict
		}
	}
	f.nextID++
	c := *u
	c.ID = f.nextID
	c.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range f.byID {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Username == username })
}

type fakeSignatures struct {
	signatures.Repository
	exists    bool
	createErr error
	created   []models.Signature
}

func (f *fakeSignatures) Exists(context.Context, int64, int64, string) (bool, error) {
	return f.exists, nil
}

func (f *fakeSignatures) Create(_ context.Context, s *models.Signature) (*models.Signature, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c := *s
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return &c, nil
}

type fakeMedia struct {
	media.Repository
	assets  map[string]models.MediaAsset
	deleted []string
}

func (f *fakeMedia) GetByID(_ context.Context, id string) (*models.MediaAsset, error) {
	if a, ok := f.assets[id]; ok {
		return &a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeMedia) Delete(_ context.Context, id string) error {
	if _, ok := f.assets[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.assets, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProjects struct {
	projects.Repository
	byID map[string]models.Project
}

func (f *fakeProjects) GetByID(_ context.Context, id string) (*models.Project, error) {
	if p, ok := f.byID[id]; ok {
		return &p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProjects) FindByThumbnail(_ context.Context, mediaID string) (*models.Project, error) {
	for _, p := range f.byID {
		if p.MainThumbnailID != nil && *p.MainThumbnailID == mediaID {
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeLinks struct {
	links.Repository
	byProject map[string][]models.ProjectLink
	replaces  int
}

func (f *fakeLinks) Replace(_ context.Context, projectID string, ls []models.ProjectLink) (int, error) {
	f.replaces++
	out := make([]models.ProjectLink, 0, len(ls))
	for i, l := range ls {
		l.ID = l.Label
		l.ProjectID = projectID
		l.Position = i
		out = append(out, l)
	}
	f.byProject[projectID] = out
	return len(out), nil
}

func (f *fakeLinks) ListByProject(_ context.Context, projectID string) ([]models.ProjectLink, error) {
	out := append([]models.ProjectLink{}, f.byProject[projectID]...)
	return out, nil
}

type fakeSettings struct {
	settings.Repository
	failKey string
	saved   []string
}

func (f *fakeSettings) Upsert(_ context.Context, s *models.Setting) (*models.Setting, error) {
	if s.Key == f.failKey {
		return nil, common.ErrorInternal
	}
	f.saved = append(f.saved, s.Key)
	c := *s
	if c.Category == "" {
		c.Category = "general"
	}
	return &c, nil
}

type fakeStorage struct {
	uploadKey string
	err       error
}

func (f *fakeStorage) PresignUpload(_ context.Context, key, _ string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	f.uploadKey = key
	return "https://s3.local/" + key + "?sig", time.Date(2024, 1, 1, 0, 15, 0, 0, time.UTC), nil
}

func (f *fakeStorage) PresignDownload(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.local/" + key + "?get", nil
}
