package svcconfig

import "errors"

// Rejection reasons. Every validation failure wraps exactly one of these,
// so callers can classify a rejection with errors.Is. There is no recovery
// path: the document is rejected as a whole and must be corrected and
// recompiled from scratch.
var (
	// ErrMalformedDocument means the text failed to parse as a document.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidRoot means the document root is not an object, or is
	// itself a keyed field.
	ErrInvalidRoot = errors.New("document root is not an object")

	// ErrMissingKey means an object member has no field name.
	ErrMissingKey = errors.New("object field has no name")

	// ErrDuplicateField means a singleton field appears more than once in
	// its scope.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrWrongType means a field holds a node of an unexpected shape.
	ErrWrongType = errors.New("field has wrong type")

	// ErrMissingRequiredField means a required field is absent, or a
	// method-config entry names no methods at all.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrFactoryRejected means the caller-supplied value factory rejected
	// a method-config entry; the reason is the factory's own.
	ErrFactoryRejected = errors.New("method config rejected")
)
