package runelookup

import "errors"

// Sentinel errors returned by lookups. Both are final for the call:
// lookups are deterministic, so retrying cannot change the outcome.
var (
	// ErrInvalidCharacter is returned when the input is not exactly one
	// Unicode scalar value.
	ErrInvalidCharacter = errors.New("runelookup: input is not a single character")

	// ErrNoName is returned when the code point has no assigned Unicode name
	// (unassigned, private use, surrogate or control code points).
	ErrNoName = errors.New("runelookup: no such name")
)
