package create_reservation

import "fmt"

// validateRequest checks the request shape before touching the ledger. The
// ledger re-validates semantics (eligibility, catalog range, contact) under
// its own error vocabulary.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	return nil
}
