package rest

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/logging"
	"github.com/dmitrijs2005/minutesfolio/internal/server/auth"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type handlers struct {
	svc Services
	log logging.Logger
	db  Pinger
}

func (h *handlers) reply(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, v)
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, h.log, err)
}

// NewRouter mounts the minutes API, the portfolio API and the operational
// endpoints. metrics and db may be nil.
func NewRouter(cfg *config.Config, log logging.Logger, svc Services, metrics *Metrics, db Pinger) http.Handler {
	log = log.With("module", "rest")
	h := &handlers{svc: svc, log: log, db: db}

	secret := []byte(cfg.SecretKey)
	anyRole := RequireRole(secret, auth.AnyRole, log)
	admin := RequireRole(secret, cfg.AdminRole, log)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, RequestID)
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(AccessLog(log), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
		MaxAge:           300,
	}))

	r.Get("/healthz", h.healthz)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	if svc.Auth != nil {
		r.Route("/api/auth", func(r chi.Router) {
			r.Use(RateLimit(cfg.LoginRatePerMinute, cfg.LoginBurst))
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(anyRole).Get("/me", h.me)
		})
	}

	if svc.Users != nil {
		r.Route("/api/Users", func(r chi.Router) {
			r.Use(anyRole)
			r.Get("/AllUsers", h.listUsers)
			r.Get("/UserByid/{id}", h.getUser)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/CreateUser", h.createUser)
				r.Put("/UpdateUser/{id}", h.updateUser)
				r.Patch("/ToggleStatus/{id}", h.toggleUser)
				r.Delete("/DeleteUser/{id}", h.deleteUser)
			})
		})
	}

	if svc.Meetings != nil {
		r.Route("/api/Meetings", func(r chi.Router) {
			r.Use(anyRole)
			r.Get("/AllMeetings", h.listMeetings)
			r.Get("/MeetingById/{id}", h.getMeeting)
			r.Get("/MeetingMinutes/{id}", h.meetingMinutes)
			r.Post("/CreateMeeting", h.createMeeting)
			r.Put("/UpdateMeeting/{id}", h.updateMeeting)
			r.Delete("/DeleteMeeting/{id}", h.deleteMeeting)
			if svc.Attendees != nil {
				r.Patch("/UpdateAttendeeStatus/{id}", h.updateAttendeeStatus)
				r.Get("/{meetingId}/Attendees", h.meetingAttendees)
				r.Post("/{meetingId}/Attendees", h.addMeetingAttendee)
			}
			if svc.Topics != nil {
				r.Get("/{meetingId}/Topics", h.meetingTopics)
				r.Post("/{meetingId}/Topics", h.addMeetingTopic)
			}
			if svc.Signatures != nil {
				r.Get("/{meetingId}/Signatures", h.meetingSignatures)
				r.Post("/{meetingId}/Signatures", h.addMeetingSignature)
			}
		})
	}

	if svc.Attendees != nil {
		r.Route("/api/Attendees", func(r chi.Router) {
			r.Use(anyRole)
			r.Get("/AllAttendees", h.listAttendees)
			r.Get("/AttendeeById/{id}", h.getAttendee)
			r.Post("/AddAttendee", h.addAttendee)
			r.Put("/UpdateAttendee/{id}", h.updateAttendee)
			r.Delete("/DeleteAttendee/{id}", h.deleteAttendee)
		})
	}

	if svc.Topics != nil {
		r.Route("/api/Topics", func(r chi.Router) {
			r.Use(anyRole)
			r.Get("/AllTopics", h.listTopics)
			r.Get("/MeetingTopics/{meetingId}", h.meetingTopics)
			r.Get("/TopicById/{id}", h.getTopic)
			r.Post("/AddTopic", h.addTopic)
			r.Put("/UpdateTopic/{id}", h.updateTopic)
			r.Delete("/DeleteTopic/{id}", h.deleteTopic)
		})
	}

	if svc.Signatures != nil {
		r.Route("/api/Signatures", func(r chi.Router) {
			r.Use(anyRole)
			r.Get("/AllSignatures", h.listSignatures)
			r.Get("/MeetingSignatures/{meetingId}", h.meetingSignatures)
			r.Get("/SignatureById/{id}", h.getSignature)
			r.Post("/AddSignature", h.addSignature)
			r.Put("/UpdateSignature/{id}", h.updateSignature)
			r.Delete("/DeleteSignature/{id}", h.deleteSignature)
		})
	}

	if svc.Projects != nil {
		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Get("/slug/{slug}", h.projectBySlug)
			r.Get("/{id}", h.getProject)
			r.Get("/{id}/details", h.projectWithThumbnail)
			r.With(admin).Post("/", h.createProject)
			r.With(admin).Put("/{id}", h.updateProject)
			r.With(admin).Delete("/{id}", h.deleteProject)
		})
	}

	if svc.Links != nil {
		r.Route("/api/project-links", func(r chi.Router) {
			r.Get("/project/{projectId}", h.listLinks)
			r.With(admin).Post("/project/{projectId}/sync", h.syncLinks)
			r.With(admin).Post("/", h.createLink)
			r.With(admin).Put("/{id}", h.updateLink)
			r.With(admin).Delete("/{id}", h.deleteLink)
		})
	}

	if svc.ProjectTech != nil {
		r.Route("/api/project-tech", func(r chi.Router) {
			r.Get("/{projectId}", h.listProjectTech)
			r.With(admin).Put("/{projectId}/sync", h.syncProjectTech)
			r.With(admin).Post("/{projectId}", h.addProjectTech)
			r.With(admin).Delete("/{projectId}/{technologyId}", h.removeProjectTech)
		})
	}

	if svc.Media != nil {
		r.Route("/api/media", func(r chi.Router) {
			r.Get("/", h.listMedia)
			r.Get("/{id}", h.getMedia)
			r.Get("/{id}/download-url", h.mediaDownloadURL)
			r.Post("/bulk", h.bulkMedia)
			r.With(admin).Post("/", h.createMedia)
			r.With(admin).Post("/upload-url", h.mediaUploadURL)
			r.With(admin).Put("/{id}", h.updateMedia)
			r.With(admin).Delete("/{id}", h.deleteMedia)
		})
	}

	if svc.Sections != nil {
		r.Route("/api/project-sections", func(r chi.Router) {
			r.Get("/project/{projectId}", h.listSections)
			r.With(admin).Post("/reorder", h.reorderSections)
			r.With(admin).Post("/", h.createSection)
			r.With(admin).Put("/{id}", h.updateSection)
			r.With(admin).Delete("/{id}", h.deleteSection)
		})
	}

	if svc.Timeline != nil {
		r.Route("/api/project-timeline", func(r chi.Router) {
			r.Get("/project/{projectId}", h.listTimeline)
			r.With(admin).Post("/", h.createTimeline)
			r.With(admin).Put("/{id}", h.updateTimeline)
			r.With(admin).Delete("/{id}", h.deleteTimeline)
		})
	}

	if svc.TechSkills != nil {
		r.Route("/api/tech-skills", func(r chi.Router) {
			r.Get("/", h.listTechSkills)
			r.With(admin).Post("/", h.createTechSkill)
			r.With(admin).Put("/{id}", h.updateTechSkill)
			r.With(admin).Delete("/{id}", h.deleteTechSkill)
		})
	}

	if svc.Catalog != nil {
		r.Route("/api/services", func(r chi.Router) {
			r.Get("/", h.listServices)
			r.Get("/slug/{slug}", h.serviceBySlug)
			r.With(admin).Post("/", h.createService)
			r.With(admin).Put("/{id}", h.updateService)
			r.With(admin).Patch("/{id}/techs", h.syncServiceTechs)
			r.With(admin).Delete("/{id}", h.deleteService)
		})
	}

	if svc.Settings != nil {
		r.Route("/api/settings", func(r chi.Router) {
			r.Get("/", h.listSettings)
			r.Get("/key/{key}", h.getSetting)
			r.With(admin).Post("/", h.upsertSetting)
			r.With(admin).Post("/bulk", h.bulkSettings)
			r.With(admin).Delete("/{key}", h.deleteSetting)
		})
	}

	if svc.Content != nil {
		r.Route("/api/content", func(r chi.Router) {
			r.Get("/page/{pageName}", h.pageContent)
			r.Get("/key/{key}", h.contentByKey)
			r.With(admin).Post("/", h.saveContent)
			r.With(admin).Delete("/{id}", h.deleteContent)
		})
	}

	return r
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.log.Warn(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
