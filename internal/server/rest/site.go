package rest

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// Technologies and skills

func (h *handlers) listTechSkills(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.TechSkills.List(r.Context(), queryString(r, "category"))
	h.reply(w, r, http.StatusOK, ts, err)
}

func (h *handlers) createTechSkill(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TechData  models.Technology `json:"techData"`
		SkillData *models.Skill     `json:"skillData"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.svc.TechSkills.Create(r.Context(), in.TechData, in.SkillData)
	h.reply(w, r, http.StatusCreated, t, err)
}

func (h *handlers) updateTechSkill(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TechUpdates  *models.TechnologyPatch `json:"techUpdates"`
		SkillUpdates *models.SkillPatch      `json:"skillUpdates"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.svc.TechSkills.Update(r.Context(), chi.URLParam(r, "id"), services.TechSkillUpdate{
		Tech:  in.TechUpdates,
		Skill: in.SkillUpdates,
	})
	h.reply(w, r, http.StatusOK, t, err)
}

func (h *handlers) deleteTechSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.TechSkills.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Technology and associated skills deleted")
}

// Services

func (h *handlers) listServices(w http.ResponseWriter, r *http.Request) {
	ss, err := h.svc.Catalog.List(r.Context())
	h.reply(w, r, http.StatusOK, ss, err)
}

func (h *handlers) serviceBySlug(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Catalog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	h.reply(w, r, http.StatusOK, s, err)
}

func (h *handlers) createService(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ServiceData models.Service  `json:"serviceData"`
		TechIDs     json.RawMessage `json:"techIds"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	var ids []string
	if b := bytes.TrimSpace(in.TechIDs); len(b) > 0 && !bytes.Equal(b, []byte("null")) {
		var err error
		if ids, err = idList(b, "techIds"); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	s, err := h.svc.Catalog.Create(r.Context(), in.ServiceData, ids)
	h.reply(w, r, http.StatusCreated, s, err)
}

func (h *handlers) updateService(w http.ResponseWriter, r *http.Request) {
	var p models.ServicePatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Catalog.Update(r.Context(), chi.URLParam(r, "id"), p)
	h.reply(w, r, http.StatusOK, s, err)
}

func (h *handlers) syncServiceTechs(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TechIDs json.RawMessage `json:"techIds"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	ids, err := idList(in.TechIDs, "techIds")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	n, err := h.svc.Catalog.SyncTechnologies(r.Context(), chi.URLParam(r, "id"), ids)
	h.reply(w, r, http.StatusOK, map[string]any{"message": "Service technologies synced", "count": n}, err)
}

func (h *handlers) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted successfully")
}

// Settings

func (h *handlers) listSettings(w http.ResponseWriter, r *http.Request) {
	ss, err := h.svc.Settings.List(r.Context(), queryString(r, "category"))
	h.reply(w, r, http.StatusOK, ss, err)
}

func (h *handlers) getSetting(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": s.Key, "value": s.Value})
}

func (h *handlers) upsertSetting(w http.ResponseWriter, r *http.Request) {
	var s models.Setting
	if err := decode(r, &s); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Settings.Upsert(r.Context(), s)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) bulkSettings(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := decode(r, &raw); err != nil {
		h.fail(w, r, err)
		return
	}
	var list []models.Setting
	if b := bytes.TrimSpace(raw); len(b) == 0 || b[0] != '[' || json.Unmarshal(b, &list) != nil {
		h.fail(w, r, badRequest("expected an array of settings"))
		return
	}

	out, err := h.svc.Settings.BulkUpsert(r.Context(), list)
	h.reply(w, r, http.StatusOK, out, err)
}

func (h *handlers) deleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Settings.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Setting deleted successfully")
}

// Page content

func (h *handlers) pageContent(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.Content.ListByPage(r.Context(), chi.URLParam(r, "pageName"))
	h.reply(w, r, http.StatusOK, cs, err)
}

func (h *handlers) contentByKey(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Content.GetByKey(r.Context(), chi.URLParam(r, "key"))
	h.reply(w, r, http.StatusOK, c, err)
}

func (h *handlers) saveContent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ContentData models.PageContent `json:"contentData"`
		MediaIDs    json.RawMessage    `json:"mediaIds"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	var ids []string
	if b := bytes.TrimSpace(in.MediaIDs); len(b) > 0 && !bytes.Equal(b, []byte("null")) {
		var err error
		if ids, err = idList(b, "mediaIds"); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	c, err := h.svc.Content.Save(r.Context(), in.ContentData, ids)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Content saved successfully", "data": c})
}

func (h *handlers) deleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Content.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Content deleted successfully")
}
