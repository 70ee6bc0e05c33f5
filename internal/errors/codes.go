// Package errors provides structured errors for the combat engine.
//
// Errors carry a Code, a human-readable message, optional metadata, and an
// optional wrapped cause. Callers classify errors with the Is* helpers
// rather than matching message text:
//
//	if errors.IsFailedPrecondition(err) {
//	    // rejected operation: the caller must correct the request
//	}
//
// The engine's error taxonomy maps onto these codes as follows:
//   - FailedPrecondition: already in combat, not in combat, ability on
//     cooldown, insufficient mana
//   - NotFound: unknown monster, ability, or player
//   - InvalidArgument: malformed dice notation, bad config, bad content
package errors

// Code classifies an error for programmatic handling.
type Code string

// Error codes.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}
