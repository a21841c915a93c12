package rest

import (
	"net/http"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// Users

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users.List(r.Context())
	h.reply(w, r, http.StatusOK, users, err)
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.svc.Users.Get(r.Context(), id)
	h.reply(w, r, http.StatusOK, u, err)
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.svc.Users.Create(r.Context(), in.input())
	h.reply(w, r, http.StatusCreated, u, err)
}

func (h *handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var p models.UserPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.svc.Users.Update(r.Context(), id, p)
	h.reply(w, r, http.StatusOK, u, err)
}

func (h *handlers) toggleUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.svc.Users.ToggleStatus(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	state := "disabled"
	if u.IsActive {
		state = "enabled"
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User is now " + state, "user": u})
}

func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Users.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}

// Meetings

func (h *handlers) listMeetings(w http.ResponseWriter, r *http.Request) {
	ms, err := h.svc.Meetings.List(r.Context())
	h.reply(w, r, http.StatusOK, ms, err)
}

func (h *handlers) getMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Meetings.Get(r.Context(), id)
	h.reply(w, r, http.StatusOK, m, err)
}

func (h *handlers) meetingMinutes(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Meetings.Minutes(r.Context(), id)
	h.reply(w, r, http.StatusOK, m, err)
}

func (h *handlers) createMeeting(w http.ResponseWriter, r *http.Request) {
	var m models.Meeting
	if err := decode(r, &m); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Meetings.Create(r.Context(), m, callerID(r))
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var p models.MeetingPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Meetings.Update(r.Context(), id, p)
	h.reply(w, r, http.StatusOK, m, err)
}

func (h *handlers) deleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Meetings.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Meeting deleted successfully")
}

// Attendees

func (h *handlers) listAttendees(w http.ResponseWriter, r *http.Request) {
	meetingID, err := queryInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	as, err := h.svc.Attendees.List(r.Context(), meetingID)
	h.reply(w, r, http.StatusOK, as, err)
}

func (h *handlers) meetingAttendees(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	as, err := h.svc.Attendees.List(r.Context(), &meetingID)
	h.reply(w, r, http.StatusOK, as, err)
}

func (h *handlers) getAttendee(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.svc.Attendees.Get(r.Context(), id)
	h.reply(w, r, http.StatusOK, a, err)
}

func (h *handlers) addAttendee(w http.ResponseWriter, r *http.Request) {
	var a models.Attendee
	if err := decode(r, &a); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Attendees.Create(r.Context(), a)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) addMeetingAttendee(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var a models.Attendee
	if err := decode(r, &a); err != nil {
		h.fail(w, r, err)
		return
	}
	a.MeetingID = meetingID
	out, err := h.svc.Attendees.Create(r.Context(), a)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateAttendee(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var p models.AttendeePatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.svc.Attendees.Update(r.Context(), id, p)
	h.reply(w, r, http.StatusOK, a, err)
}

func (h *handlers) updateAttendeeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	if in.Status == "" {
		h.fail(w, r, badRequest("status is required"))
		return
	}
	a, err := h.svc.Attendees.UpdateStatus(r.Context(), id, in.Status)
	h.reply(w, r, http.StatusOK, a, err)
}

func (h *handlers) deleteAttendee(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Attendees.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Attendee deleted successfully")
}

// Topics

func (h *handlers) listTopics(w http.ResponseWriter, r *http.Request) {
	meetingID, err := queryInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ts, err := h.svc.Topics.List(r.Context(), meetingID)
	h.reply(w, r, http.StatusOK, ts, err)
}

func (h *handlers) meetingTopics(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ts, err := h.svc.Topics.List(r.Context(), &meetingID)
	h.reply(w, r, http.StatusOK, ts, err)
}

func (h *handlers) getTopic(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.svc.Topics.Get(r.Context(), id)
	h.reply(w, r, http.StatusOK, t, err)
}

func (h *handlers) addTopic(w http.ResponseWriter, r *http.Request) {
	var t models.Topic
	if err := decode(r, &t); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.svc.Topics.Create(r.Context(), t)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) addMeetingTopic(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var t models.Topic
	if err := decode(r, &t); err != nil {
		h.fail(w, r, err)
		return
	}
	t.MeetingID = meetingID
	out, err := h.svc.Topics.Create(r.Context(), t)
	h.reply(w, r, http.StatusCreated, out, err)
}

func (h *handlers) updateTopic(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var p models.TopicPatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.svc.Topics.Update(r.Context(), id, p)
	h.reply(w, r, http.StatusOK, t, err)
}

func (h *handlers) deleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Topics.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Topic deleted successfully")
}

// Signatures

type signatureRequest struct {
	MeetingID int64  `json:"meetingId"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
}

func (in signatureRequest) signature() models.Signature {
	return models.Signature{MeetingID: in.MeetingID, SignedBy: in.UserID, Role: in.Role}
}

func (h *handlers) listSignatures(w http.ResponseWriter, r *http.Request) {
	meetingID, err := queryInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ss, err := h.svc.Signatures.List(r.Context(), meetingID)
	h.reply(w, r, http.StatusOK, ss, err)
}

func (h *handlers) meetingSignatures(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ss, err := h.svc.Signatures.List(r.Context(), &meetingID)
	h.reply(w, r, http.StatusOK, ss, err)
}

func (h *handlers) getSignature(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Signatures.Get(r.Context(), id)
	h.reply(w, r, http.StatusOK, s, err)
}

func (h *handlers) addSignature(w http.ResponseWriter, r *http.Request) {
	var in signatureRequest
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Signatures.Create(r.Context(), in.signature())
	h.reply(w, r, http.StatusCreated, s, err)
}

func (h *handlers) addMeetingSignature(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathInt(r, "meetingId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in signatureRequest
	if err := decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.MeetingID = meetingID
	s, err := h.svc.Signatures.Create(r.Context(), in.signature())
	h.reply(w, r, http.StatusCreated, s, err)
}

func (h *handlers) updateSignature(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var p models.SignaturePatch
	if err := decode(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Signatures.Update(r.Context(), id, p)
	h.reply(w, r, http.StatusOK, s, err)
}

func (h *handlers) deleteSignature(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Signatures.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Signature deleted successfully")
}
