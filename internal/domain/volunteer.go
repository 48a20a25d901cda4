package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s()-]+$`)
)

type Volunteer struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
}

// NewVolunteer validates name/phone and the optional email.
func NewVolunteer(name, phone string, email *string) (*Volunteer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" || phone == "" {
		return nil, ErrValidation("Todos os campos são obrigatórios (name, phone)")
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrValidation("Telefone inválido")
	}
	if email != nil {
		v := strings.TrimSpace(*email)
		if v == "" {
			email = nil
		} else {
			if !emailPattern.MatchString(v) {
				return nil, ErrValidation("Email inválido")
			}
			email = &v
		}
	}

	return &Volunteer{Name: name, Phone: phone, Email: email}, nil
}
