package rest

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
)

// The interfaces below list what the handlers need from each service.
// The concrete services in internal/server/services satisfy them.

type AuthAPI interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, login, password string) (*services.LoginResult, error)
	Me(ctx context.Context, userID int64) (*models.User, error)
}

type UserAPI interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Update(ctx context.Context, id int64, p models.UserPatch) (*models.User, error)
	ToggleStatus(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type MeetingAPI interface {
	List(ctx context.Context) ([]models.Meeting, error)
	Get(ctx context.Context, id int64) (*models.Meeting, error)
	Minutes(ctx context.Context, id int64) (*models.MeetingMinutes, error)
	Create(ctx context.Context, m models.Meeting, callerID int64) (*models.Meeting, error)
	Update(ctx context.Context, id int64, p models.MeetingPatch) (*models.Meeting, error)
	Delete(ctx context.Context, id int64) error
}

type AttendeeAPI interface {
	List(ctx context.Context, meetingID *int64) ([]models.Attendee, error)
	Get(ctx context.Context, id int64) (*models.Attendee, error)
	Create(ctx context.Context, a models.Attendee) (*models.Attendee, error)
	Update(ctx context.Context, id int64, p models.AttendeePatch) (*models.Attendee, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Attendee, error)
	Delete(ctx context.Context, id int64) error
}

type TopicAPI interface {
	List(ctx context.Context, meetingID *int64) ([]models.Topic, error)
	Get(ctx context.Context, id int64) (*models.Topic, error)
	Create(ctx context.Context, t models.Topic) (*models.Topic, error)
	Update(ctx context.Context, id int64, p models.TopicPatch) (*models.Topic, error)
	Delete(ctx context.Context, id int64) error
}

type SignatureAPI interface {
	List(ctx context.Context, meetingID *int64) ([]models.Signature, error)
	Get(ctx context.Context, id int64) (*models.Signature, error)
	Create(ctx context.Context, s models.Signature) (*models.Signature, error)
	Update(ctx context.Context, id int64, p models.SignaturePatch) (*models.Signature, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectAPI interface {
	List(ctx context.Context) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Get(ctx context.Context, id string) (*models.ProjectDetails, error)
	GetWithThumbnail(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (*models.Project, error)
	Update(ctx context.Context, id string, p models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type LinkAPI interface {
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectLink, error)
	Sync(ctx context.Context, projectID string, links []models.ProjectLink) ([]models.ProjectLink, error)
	Create(ctx context.Context, l models.ProjectLink) (*models.ProjectLink, error)
	Update(ctx context.Context, id string, p models.ProjectLinkPatch) (*models.ProjectLink, error)
	Delete(ctx context.Context, id string) error
}

type ProjectTechAPI interface {
	List(ctx context.Context, projectID string) ([]models.Technology, error)
	Add(ctx context.Context, projectID string, technologyIDs []string) (int, error)
	Sync(ctx context.Context, projectID string, technologyIDs []string) (int, error)
	Remove(ctx context.Context, projectID, technologyID string) error
}

type MediaAPI interface {
	List(ctx context.Context) ([]models.MediaAsset, error)
	Get(ctx context.Context, id string) (*models.MediaAsset, error)
	GetMany(ctx context.Context, ids []string) ([]models.MediaAsset, error)
	Create(ctx context.Context, m models.MediaAsset) (*models.MediaAsset, error)
	Update(ctx context.Context, id string, p models.MediaAssetPatch) (*models.MediaAsset, error)
	Delete(ctx context.Context, id string) error
	UploadURL(ctx context.Context, fileName, mimeType string) (*models.UploadTicket, error)
	DownloadURL(ctx context.Context, id string) (string, error)
}

type SectionAPI interface {
	ListByProject(ctx context.Context, projectID string) ([]models.ProjectSection, error)
	Create(ctx context.Context, s models.ProjectSection) (*models.ProjectSection, error)
	Update(ctx context.Context, id string, p models.ProjectSectionPatch) (*models.ProjectSection, error)
	Reorder(ctx context.Context, items []models.SectionOrder) error
	Delete(ctx context.Context, id string) error
}

type TimelineAPI interface {
	ListByProject(ctx context.Context, projectID string) ([]models.TimelineEntry, error)
	Create(ctx context.Context, e models.TimelineEntry) (*models.TimelineEntry, error)
	Update(ctx context.Context, id string, p models.TimelineEntryPatch) (*models.TimelineEntry, error)
	Delete(ctx context.Context, id string) error
}

type TechSkillAPI interface {
	List(ctx context.Context, category *string) ([]models.Technology, error)
	Create(ctx context.Context, t models.Technology, skill *models.Skill) (*models.Technology, error)
	Update(ctx context.Context, id string, u services.TechSkillUpdate) (*models.Technology, error)
	Delete(ctx context.Context, id string) error
}

type CatalogAPI interface {
	List(ctx context.Context) ([]models.Service, error)
	GetBySlug(ctx context.Context, slug string) (*models.Service, error)
	Create(ctx context.Context, s models.Service, technologyIDs []string) (*models.Service, error)
	Update(ctx context.Context, id string, p models.ServicePatch) (*models.Service, error)
	SyncTechnologies(ctx context.Context, id string, technologyIDs []string) (int, error)
	Delete(ctx context.Context, id string) error
}

type SettingAPI interface {
	List(ctx context.Context, category *string) ([]models.Setting, error)
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, s models.Setting) (*models.Setting, error)
	BulkUpsert(ctx context.Context, list []models.Setting) ([]models.Setting, error)
	Delete(ctx context.Context, key string) error
}

type ContentAPI interface {
	ListByPage(ctx context.Context, page string) ([]models.PageContent, error)
	GetByKey(ctx context.Context, key string) (*models.PageContent, error)
	Save(ctx context.Context, c models.PageContent, mediaIDs []string) (*models.PageContent, error)
	Delete(ctx context.Context, id string) error
}

// Services bundles every API the router mounts. A nil field leaves its
// routes unmounted.
type Services struct {
	Auth        AuthAPI
	Users       UserAPI
	Meetings    MeetingAPI
	Attendees   AttendeeAPI
	Topics      TopicAPI
	Signatures  SignatureAPI
	Projects    ProjectAPI
	Links       LinkAPI
	ProjectTech ProjectTechAPI
	Media       MediaAPI
	Sections    SectionAPI
	Timeline    TimelineAPI
	TechSkills  TechSkillAPI
	Catalog     CatalogAPI
	Settings    SettingAPI
	Content     ContentAPI
}

var (
	_ AuthAPI        = (*services.AuthService)(nil)
	_ UserAPI        = (*services.UserService)(nil)
	_ MeetingAPI     = (*services.MeetingService)(nil)
	_ AttendeeAPI    = (*services.AttendeeService)(nil)
	_ TopicAPI       = (*services.TopicService)(nil)
	_ SignatureAPI   = (*services.SignatureService)(nil)
	_ ProjectAPI     = (*services.ProjectService)(nil)
	_ LinkAPI        = (*services.LinkService)(nil)
	_ ProjectTechAPI = (*services.ProjectTechService)(nil)
	_ MediaAPI       = (*services.MediaService)(nil)
	_ SectionAPI     = (*services.SectionService)(nil)
	_ TimelineAPI    = (*services.TimelineService)(nil)
	_ TechSkillAPI   = (*services.TechSkillService)(nil)
	_ CatalogAPI     = (*services.CatalogService)(nil)
	_ SettingAPI     = (*services.SettingService)(nil)
	_ ContentAPI     = (*services.ContentService)(nil)
)
