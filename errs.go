package designtokens

import "errors"

var (
	// ErrMissingValue is returned when a token object has no $value.
	ErrMissingValue = errors.New("invalid token: missing $value")
	// ErrInvalidFieldType is returned when $description or $type is not a
	// string, or $extensions is not an object.
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrInvalidRootValue is returned when type inference meets a value
	// that is not a JSON kind.
	ErrInvalidRootValue = errors.New("invalid value")
	// ErrCyclicAlias is returned when resolving a token leads back to a
	// token already being resolved.
	ErrCyclicAlias = errors.New("cyclic alias")
	ErrInvalidDocument = errors.New("invalid document")
	ErrAttached        = errors.New("node is attached to a group")
)
