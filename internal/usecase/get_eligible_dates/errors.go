package get_eligible_dates

import "errors"

var (
	// ErrInternal is returned on ledger failures.
	ErrInternal = errors.New("get_eligible_dates: internal error")
)
