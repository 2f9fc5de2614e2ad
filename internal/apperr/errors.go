// Package apperr defines the error categories the HTTP layer maps to
// status codes. Services wrap these sentinels with context via fmt.Errorf
// and %w; handlers branch with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation marks a request rejected before any external call.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing course, user or purchase record.
	ErrNotFound = errors.New("not found")

	// ErrAuthenticity marks a webhook that failed signature
	// verification, arrived unsigned, or hit an unconfigured secret.
	ErrAuthenticity = errors.New("authenticity check failed")

	// ErrExternalService marks a payment-provider failure during
	// session creation. Retryable by the client; no ledger state is
	// persisted when it occurs.
	ErrExternalService = errors.New("external service error")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
