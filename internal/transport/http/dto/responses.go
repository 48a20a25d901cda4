package dto

import (
	"time"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type MessageResp struct {
	Message string `json:"message"`
}

type RegisterResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type UserResp struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResp struct {
	Token string   `json:"token"`
	User  UserResp `json:"user"`
}

type EventResp struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Volunteers   string     `json:"volunteers"`
	VolunteerIDs []int64    `json:"volunteer_ids,omitempty"`
}

type EventEnvelope struct {
	Message string    `json:"message"`
	Event   EventResp `json:"event"`
}

type VolunteerResp struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

type VolunteerEnvelope struct {
	Message   string        `json:"message"`
	Volunteer VolunteerResp `json:"volunteer"`
}

type VolunteerListResp struct {
	Message    string          `json:"message"`
	Volunteers []VolunteerResp `json:"volunteers"`
}

func ToEventResp(e *domain.Event) EventResp {
	return EventResp{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Volunteers:   e.Volunteers,
		VolunteerIDs: e.VolunteerIDs,
	}
}

func ToEventList(items []*domain.Event) []EventResp {
	out := make([]EventResp, 0, len(items))
	for _, e := range items {
		out = append(out, ToEventResp(e))
	}
	return out
}

func ToVolunteerResp(v *domain.Volunteer) VolunteerResp {
	return VolunteerResp{ID: v.ID, Name: v.Name, Phone: v.Phone, Email: v.Email}
}

func ToVolunteerList(items []*domain.Volunteer) []VolunteerResp {
	out := make([]VolunteerResp, 0, len(items))
	for _, v := range items {
		out = append(out, ToVolunteerResp(v))
	}
	return out
}
