package rest

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// idList decodes raw as a JSON array of ids. Anything else, null
// included, is rejected.
func idList(raw json.RawMessage, name string) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, badRequest(name + " must be an array")
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, badRequest(name + " must be an array of strings")
	}
	return ids, nil
}

// Projects

func (h *handlers) listProjects(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.Projects.List(r.Context())
	h.reply(w, r, http.StatusOK, ps, err)
}

func (h *handlers) projectBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Projects.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	h.reply(w, r, http.StatusOK, p, err)
}

func (h *handlers) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	h.reply(w, r, http.StatusOK, p, err)
}

func (h *handlers) projectWithThumbnail(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Projects.GetWithThumbnail(r.Context(), chi.URLParam(r, "id"))
	h.reply(w, r, http.StatusOK, p, err)
}

func (h *handlers) createProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Projects.Create(r.Context(), p)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateProject(w http.ResponseWriter, r *http.Request) {
	var p models.ProjectPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Projects.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project deleted successfully")
}

// Project links

func (h *handlers) listLinks(w http.ResponseWriter, r *http.Request) {
	ls, err := h.svc.Links.ListByProject(r.Context(), chi.URLParam(r, "projectId"))
	h.reply(w, r, http.StatusOK, ls, err)
}

func (h *handlers) syncLinks(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decode(r, &raw); err != nil {
		h.fail(w, r, err)
		return
	}
	if b := bytes.TrimSpace(raw); len(b) == 0 || b[0] != '[' {
		h.fail(w, r, badRequest("expected an array of links"))
		return
	}
	var links []models.ProjectLink
	if err := json.Unmarshal(raw, &links); err != nil {
		h.fail(w, r, badRequest("expected an array of links"))
		return
	}

	out, err := h.svc.Links.Sync(r.Context(), chi.URLParam(r, "projectId"), links)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) createLink(w http.ResponseWriter, r *http.Request) {
	var l models.ProjectLink
	if err := decode(r, &l); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Links.Create(r.Context(), l)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateLink(w http.ResponseWriter, r *http.Request) {
	var p models.ProjectLinkPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Links.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) deleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Links.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Link deleted successfully")
}

// Project technologies

type technologyIDsRequest struct {
	TechnologyIDs json.RawMessage `json:"technologyIds"`
}

func (h *handlers) listProjectTech(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.ProjectTech.List(r.Context(), chi.URLParam(r, "projectId"))
	h.reply(w, r, http.StatusOK, ts, err)
}

func (h *handlers) projectTechIDs(r *http.Request) ([]string, error) {
	var in technologyIDsRequest
	if err := decode(r, &in); err != nil {
		return nil, err
	}
	return idList(in.TechnologyIDs, "technologyIds")
}

func (h *handlers) syncProjectTech(w http.ResponseWriter, r *http.Request) {
	ids, err := h.projectTechIDs(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	n, err := h.svc.ProjectTech.Sync(r.Context(), chi.URLParam(r, "projectId"), ids)
	h.reply(w, r, http.StatusOK, map[string]any{"message": "Technologies synced", "count": n}, err)
}

func (h *handlers) addProjectTech(w http.ResponseWriter, r *http.Request) {
	ids, err := h.projectTechIDs(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	n, err := h.svc.ProjectTech.Add(r.Context(), chi.URLParam(r, "projectId"), ids)
	h.reply(w, r, http.StatusCreated, map[string]any{"message": "Technologies added", "count": n}, err)
}

func (h *handlers) removeProjectTech(w http.ResponseWriter, r *http.Request) {
	err := h.svc.ProjectTech.Remove(r.Context(), chi.URLParam(r, "projectId"), chi.URLParam(r, "technologyId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Technology removed from project")
}

// Media

func (h *handlers) listMedia(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Media.List(r.Context())
	h.reply(w, r, http.StatusOK, ms, err)
}

func (h *handlers) getMedia(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Media.Get(r.Context(), chi.URLParam(r, "id"))
	h.reply(w, r, http.StatusOK, m, err)
}

func (h *handlers) bulkMedia(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IDs json.RawMessage `json:"ids"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	ids, err := idList(in.IDs, "ids")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ms, err := h.svc.Media.GetMany(r.Context(), ids)
	h.reply(w, r, http.StatusOK, ms, err)
}

func (h *handlers) createMedia(w http.ResponseWriter, r *http.Request) {
	var m models.MediaAsset
	if err := decode(r, &m); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Media.Create(r.Context(), m)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) mediaUploadURL(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FileName string `json:"fileName"`
		MimeType string `json:"mimeType"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.svc.Media.UploadURL(r.Context(), in.FileName, in.MimeType)
	h.reply(w, r, http.StatusOK, t, err)
}

func (h *handlers) mediaDownloadURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.Media.DownloadURL(r.Context(), chi.URLParam(r, "id"))
	h.reply(w, r, http.StatusOK, map[string]string{"url": url}, err)
}

func (h *handlers) updateMedia(w http.ResponseWriter, r *http.Request) {
	var p models.MediaAssetPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Media.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, m, err)
}

func (h *handlers) deleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Media.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Media asset deleted successfully")
}

// Sections

func (h *handlers) listSections(w http.ResponseWriter, r *http.Request) {
	ss, err := h.svc.Sections.ListByProject(r.Context(), chi.URLParam(r, "projectId"))
	h.reply(w, r, http.StatusOK, ss, err)
}

func (h *handlers) reorderSections(w http.ResponseWriter, r *http.Request) {
	var items []models.SectionOrder
	if err := decode(r, &items); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Sections.Reorder(r.Context(), items); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Sections reordered")
}

func (h *handlers) createSection(w http.ResponseWriter, r *http.Request) {
	var s models.ProjectSection
	if err := decode(r, &s); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Sections.Create(r.Context(), s)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateSection(w http.ResponseWriter, r *http.Request) {
	var p models.ProjectSectionPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Sections.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) deleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Sections.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Section deleted successfully")
}

// Timeline

func (h *handlers) listTimeline(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.Timeline.ListByProject(r.Context(), chi.URLParam(r, "projectId"))
	h.reply(w, r, http.StatusOK, es, err)
}

func (h *handlers) createTimeline(w http.ResponseWriter, r *http.Request) {
	var e models.TimelineEntry
	if err := decode(r, &e); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Timeline.Create(r.Context(), e)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateTimeline(w http.ResponseWriter, r *http.Request) {
	var p models.TimelineEntryPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Timeline.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) deleteTimeline(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Timeline.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Timeline entry deleted successfully")
}
