package stores

import "errors"

// Local precondition failures, short-circuited before any request goes out.
var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
