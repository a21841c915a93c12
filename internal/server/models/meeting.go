package models

import "time"

// Attendance statuses accepted for meeting attendees.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

// IsAttendanceStatus reports whether s is a known attendance status.
func IsAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

type Meeting struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type MeetingPatch struct {
	Title *string    `json:"title"`
	Date  *time.Time `json:"date"`
}

type Attendee struct {
	ID        int64   `json:"id"`
	MeetingID int64   `json:"meetingId"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Status    string  `json:"status"`
}

type AttendeePatch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Status *string `json:"status"`
}

type Topic struct {
	ID        int64  `json:"id"`
	MeetingID int64  `json:"meetingId"`
	Subject   string `json:"subject"`
	Notes     string `json:"notes"`
	Decisions string `json:"decisions"`
	Actions   string `json:"actions"`
}

type TopicPatch struct {
	Subject   *string `json:"subject"`
	Notes     *string `json:"notes"`
	Decisions *string `json:"decisions"`
	Actions   *string `json:"actions"`
}

// Signature records that a user signed a meeting's minutes in a role.
// Signer is filled on reads that join users.
type Signature struct {
	ID        int64        `json:"id"`
	MeetingID int64        `json:"meetingId"`
	SignedBy  int64        `json:"signedBy"`
	Role      string       `json:"role"`
	SignedAt  time.Time    `json:"signedAt"`
	Signer    *UserSummary `json:"user,omitempty"`
}

type SignaturePatch struct {
	Role *string `json:"role"`
}

// MeetingMinutes is a meeting with everything recorded against it.
type MeetingMinutes struct {
	Meeting
	Attendees  []Attendee  `json:"attendees"`
	Topics     []Topic     `json:"topics"`
	Signatures []Signature `json:"signatures"`
}
