// Package sessionview renders session snapshots to the wire format shared by
// every session handler.
package sessionview

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
)

// SessionResponse is the wire form of a session snapshot.
type SessionResponse struct {
	ID      string       `json:"id"`
	State   string       `json:"state"`
	Date    *string      `json:"date,omitempty"`
	Slot    *SlotView    `json:"slot,omitempty"`
	Contact ContactView  `json:"contact"`
	Booking *BookingView `json:"booking,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// SlotView is the wire form of a catalog slot.
type SlotView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Display     string `json:"display"`
	Description string `json:"description"`
}

// ContactView is the wire form of the contact draft.
type ContactView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Purpose string `json:"purpose,omitempty"`
}

// BookingView is the wire form of a committed booking.
type BookingView struct {
	ID              string      `json:"id"`
	VisitDate       string      `json:"visitDate"`
	SlotID          int         `json:"slotId"`
	SlotName        string      `json:"slotName"`
	SlotDisplay     string      `json:"slotDisplay"`
	SlotDescription string      `json:"slotDescription"`
	Contact         ContactView `json:"contact"`
	CreatedAt       string      `json:"createdAt"`
}

// FromSnapshot converts a registry snapshot to its wire form.
func FromSnapshot(snap sessions.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:      snap.ID,
		State:   string(snap.State),
		Contact: contactView(snap.Contact),
		Reason:  snap.Reason,
	}
	if snap.Date != nil {
		date := snap.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if snap.Slot != nil {
		resp.Slot = &SlotView{
			ID:          snap.Slot.ID,
			Name:        snap.Slot.Name,
			Display:     snap.Slot.Display,
			Description: snap.Slot.Description,
		}
	}
	if snap.Booking != nil {
		resp.Booking = FromBooking(snap.Booking)
	}
	return resp
}

// FromBooking converts a booking to its wire form.
func FromBooking(b *domain.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID,
		VisitDate:       b.VisitDate.Format(domain.DateFormat),
		SlotID:          b.SlotID,
		SlotName:        b.SlotName,
		SlotDisplay:     b.SlotDisplay,
		SlotDescription: b.SlotDescription,
		Contact:         contactView(b.Contact),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func contactView(c domain.ContactInfo) ContactView {
	return ContactView{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Purpose: string(c.Purpose),
	}
}
