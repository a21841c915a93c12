package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/services"
)

// SeedPassword is the password of both seeded officers.
const SeedPassword = "password123"

type MeetingCreator interface {
	Create(ctx context.Context, m models.Meeting, callerID int64) (*models.Meeting, error)
}

type AttendeeCreator interface {
	Create(ctx context.Context, a models.Attendee) (*models.Attendee, error)
}

type TopicCreator interface {
	Create(ctx context.Context, t models.Topic) (*models.Topic, error)
}

type SignatureCreator interface {
	Create(ctx context.Context, s models.Signature) (*models.Signature, error)
}

// Seeder inserts a small, fixed data set: a secretary and a chairman, and
// one meeting with its register, agenda and both signatures.
type Seeder struct {
	Users      UserCreator
	Meetings   MeetingCreator
	Attendees  AttendeeCreator
	Topics     TopicCreator
	Signatures SignatureCreator
}

type SeedResult struct {
	MeetingID  int64
	Users      int
	Attendees  int
	Topics     int
	Signatures int
}

type seedOfficer struct {
	fullName, username, email, role string
}

var seedOfficers = []seedOfficer{
	{"Alice Secretary", "secretary", "secretary@club.com", "Secretary General"},
	{"Bob President", "president", "president@club.com", "Chairman"},
}

func strPtr(s string) *string { return &s }

var seedAttendees = []models.Attendee{
	{Name: "Charlie Kim", Email: strPtr("charlie@example.com"), Status: models.AttendancePresent},
	{Name: "Diana Lopez", Email: strPtr("diana@example.com"), Status: models.AttendancePresent},
	{Name: "Ethan Wright", Email: strPtr("ethan@example.com"), Status: models.AttendanceLate},
	{Name: "Fiona Green", Email: strPtr("fiona@example.com"), Status: models.AttendanceAbsent},
}

var seedTopics = []models.Topic{
	{
		Subject:   "Welcome & Introduction",
		Notes:     "Secretary welcomed everyone to the first club meeting.",
		Decisions: "Agreed on regular meeting schedule.",
		Actions:   "Secretary to circulate finalized schedule.",
	},
	{
		Subject:   "Budget Discussion",
		Notes:     "President presented proposed budget and collected feedback.",
		Decisions: "Budget was approved unanimously.",
		Actions:   "Treasurer to finalize and submit by next week.",
	},
}

// Seed is not idempotent: a second run fails on the officers' unique
// emails before anything else is written.
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{}

	officers := make([]*models.User, 0, len(seedOfficers))
	for _, o := range seedOfficers {
		u, err := s.Users.Create(ctx, services.RegisterInput{
			FullName: o.fullName,
			Username: o.username,
			Email:    o.email,
			Password: SeedPassword,
			Role:     o.role,
		})
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", o.username, err)
		}
		officers = append(officers, u)
		res.Users++
	}
	secretary := officers[0]

	meeting, err := s.Meetings.Create(ctx, models.Meeting{
		Title: "First Club Meeting",
		Date:  time.Date(2025, time.September, 12, 16, 0, 0, 0, time.UTC),
	}, secretary.ID)
	if err != nil {
		return nil, fmt.Errorf("meeting: %w", err)
	}
	res.MeetingID = meeting.ID

	for _, a := range seedAttendees {
		a.MeetingID = meeting.ID
		if _, err := s.Attendees.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("attendee %s: %w", a.Name, err)
		}
		res.Attendees++
	}

	for _, t := range seedTopics {
		t.MeetingID = meeting.ID
		if _, err := s.Topics.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.Subject, err)
		}
		res.Topics++
	}

	for _, u := range officers {
		if _, err := s.Signatures.Create(ctx, models.Signature{MeetingID: meeting.ID, SignedBy: u.ID, Role: u.Role}); err != nil {
			return nil, fmt.Errorf("signature %s: %w", u.Username, err)
		}
		res.Signatures++
	}

	return res, nil
}
