package validators

import "errors"

var (
	// ErrUnknownRule is returned by Compile when a named rule does not exist
	// in the registry. Referencing an unknown validator is a configuration
	// error and must fail loudly rather than silently pass.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrBadRuleParams is returned by Compile when a named rule's parameters
	// are missing or of the wrong type.
	ErrBadRuleParams = errors.New("invalid validation rule params")

	// ErrNilPredicate is returned by Compile when a PredicateRule carries no
	// check function.
	ErrNilPredicate = errors.New("nil predicate rule")
)

// Sentinel errors returned by the builtin rule functions.
var (
	ErrRequired     = errors.New("value is required")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrTooShort     = errors.New("value is too short")
	ErrTooLong      = errors.New("value is too long")
)
