package psx

import "errors"

// Error classes. Package-specific sentinels (in internal/pngcodec and
// project) wrap one of these, so callers can branch on the class with
// errors.Is without knowing every individual failure.
var (
	// ErrValidation is the class of caller-supplied data that does not fit
	// the declared dimensions or shape.
	ErrValidation = errors.New("psx: validation error")

	// ErrFormat is the class of malformed or unsupported input bytes:
	// PNG streams, manifests and project archives.
	ErrFormat = errors.New("psx: format error")
)

// classError is a sentinel error that also matches its class under errors.Is.
type classError struct {
	msg   string
	class error
}

func (e *classError) Error() string { return e.msg }
func (e *classError) Unwrap() error { return e.class }

// NewValidationError returns a new sentinel error with the given text that
// matches [ErrValidation] under errors.Is.
func NewValidationError(msg string) error {
	return &classError{msg: msg, class: ErrValidation}
}

// NewFormatError returns a new sentinel error with the given text that
// matches [ErrFormat] under errors.Is.
func NewFormatError(msg string) error {
	return &classError{msg: msg, class: ErrFormat}
}
