package catalog

import "errors"

var (
	// ErrInvalidDateFormat is matched by validation errors on release date params.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidPagination is matched by validation errors on page_size and page_number.
	ErrInvalidPagination = errors.New("invalid pagination")
)

// ValidationError is a client-caused query parameter error.
// Message is safe to return to the caller as is.
type ValidationError struct {
	Field   string
	Message string
	kind    error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == e.kind
}

func invalidDateFormat(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: "Invalid " + field + " format. Use YYYY-MM-DD.",
		kind:    ErrInvalidDateFormat,
	}
}

func invalidPagination(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: field + " is required and must be a positive integer.",
		kind:    ErrInvalidPagination,
	}
}
