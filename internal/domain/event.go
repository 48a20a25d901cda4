package domain

import (
	"strings"
	"time"
)

const (
	MinVolunteers = 1
	MaxVolunteers = 3
)

type Event struct {
	ID          int64
	Title       string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time

	// Volunteers is the display projection: names joined ", ".
	Volunteers   string
	VolunteerIDs []int64
}

// NewEvent validates the full payload used by both create and update.
// The same rules apply on update because the API replaces the record wholesale.
func NewEvent(title, description, location string, start time.Time, end *time.Time, volunteerIDs []int64) (*Event, error) {
	title = strings.TrimSpace(title)

	if title == "" || start.IsZero() || end == nil || end.IsZero() {
		return nil, ErrValidation("Todos os campos são obrigatórios")
	}
	if !start.Before(*end) {
		return nil, ErrValidation("A data de início não pode ser maior ou igual a data de término")
	}
	if len(volunteerIDs) < MinVolunteers {
		return nil, ErrValidation("O evento deve ter no mínimo 1 voluntário")
	}
	if len(volunteerIDs) > MaxVolunteers {
		return nil, ErrValidation("O evento pode ter no máximo 3 voluntários")
	}

	endUTC := end.UTC()
	return &Event{
		Title:        title,
		Description:  strings.TrimSpace(description),
		Location:     strings.TrimSpace(location),
		StartDate:    start.UTC(),
		EndDate:      &endUTC,
		VolunteerIDs: volunteerIDs,
	}, nil
}

// MissingVolunteers returns the requested ids not present in existing.
func MissingVolunteers(requested, existing []int64) []int64 {
	seen := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	var missing []int64
	for _, id := range requested {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
