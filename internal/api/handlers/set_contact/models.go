package set_contact

import (
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

// SetContactRequest HTTP request model. Omitted fields keep their current
// values so the form can be filled incrementally.
type SetContactRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Purpose *string `json:"purpose,omitempty"`
}

// ToContactFields converts the HTTP request to the session update model.
func (r *SetContactRequest) ToContactFields() session.ContactFields {
	return session.ContactFields{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Purpose: r.Purpose,
	}
}
