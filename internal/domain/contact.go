package domain

import (
	"fmt"
	"strings"
)

// VisitPurpose is the optional purpose-of-visit tag on a reservation.
type VisitPurpose string

const (
	PurposeResearch     VisitPurpose = "research"
	PurposeStudy        VisitPurpose = "study"
	PurposeBorrowBooks  VisitPurpose = "borrow-books"
	PurposeReturnBooks  VisitPurpose = "return-books"
	PurposeGeneralVisit VisitPurpose = "general-visit"
)

// VisitPurposes lists every accepted purpose tag.
var VisitPurposes = []VisitPurpose{
	PurposeResearch,
	PurposeStudy,
	PurposeBorrowBooks,
	PurposeReturnBooks,
	PurposeGeneralVisit,
}

// ParseVisitPurpose validates a raw purpose tag. The empty string is valid:
// the purpose is optional.
func ParseVisitPurpose(raw string) (VisitPurpose, error) {
	if raw == "" {
		return "", nil
	}
	for _, p := range VisitPurposes {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown visit purpose %q", raw)
}

// ContactInfo identifies the visitor holding a reservation. Name, email and
// phone are required; purpose is optional.
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Purpose VisitPurpose
}

// Normalize trims surrounding whitespace from every field.
func (c ContactInfo) Normalize() ContactInfo {
	return ContactInfo{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Purpose: c.Purpose,
	}
}

// Validate checks field presence after trimming and that the purpose, when
// set, is one of the fixed tags.
func (c ContactInfo) Validate() error {
	n := c.Normalize()

	if n.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(n.Name) > MaxContactNameLen {
		return fmt.Errorf("name exceeds %d characters", MaxContactNameLen)
	}
	if n.Email == "" {
		return fmt.Errorf("email is required")
	}
	if len(n.Email) > MaxContactEmailLen {
		return fmt.Errorf("email exceeds %d characters", MaxContactEmailLen)
	}
	if !strings.Contains(n.Email, "@") {
		return fmt.Errorf("email is malformed")
	}
	if n.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if len(n.Phone) > MaxContactPhoneLen {
		return fmt.Errorf("phone exceeds %d characters", MaxContactPhoneLen)
	}
	if _, err := ParseVisitPurpose(string(n.Purpose)); err != nil {
		return err
	}
	return nil
}

// IsComplete reports whether every required field is present after trimming.
// Unlike Validate it does not reject malformed values; the session uses it
// to gate the submit transition.
func (c ContactInfo) IsComplete() bool {
	n := c.Normalize()
	return n.Name != "" && n.Email != "" && n.Phone != ""
}
