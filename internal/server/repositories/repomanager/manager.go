package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/attendees"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/links"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/media"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/meetings"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/projecttech"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/sections"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/settings"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/signatures"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/technologies"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/timeline"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/topics"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so a service
// can use the same repositories on *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Meetings(db dbx.DBTX) meetings.Repository
	Attendees(db dbx.DBTX) attendees.Repository
	Topics(db dbx.DBTX) topics.Repository
	Signatures(db dbx.DBTX) signatures.Repository

	Media(db dbx.DBTX) media.Repository
	Projects(db dbx.DBTX) projects.Repository
	Links(db dbx.DBTX) links.Repository
	ProjectTech(db dbx.DBTX) projecttech.Repository
	Sections(db dbx.DBTX) sections.Repository
	Timeline(db dbx.DBTX) timeline.Repository
	Technologies(db dbx.DBTX) technologies.Repository
	Catalog(db dbx.DBTX) catalog.Repository
	Settings(db dbx.DBTX) settings.Repository
	Content(db dbx.DBTX) content.Repository
}
