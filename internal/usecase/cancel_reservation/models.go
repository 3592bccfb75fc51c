package cancel_reservation

// Request identifies the booking to cancel. Cancellation frees the
// (date, slot) key for the next visitor.
type Request struct {
	ID string
}
