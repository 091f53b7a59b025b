package sanitizer

import "errors"

var (
	// ErrEncoderNotConfigured is returned when a tuple of arity other than
	// two must be serialized but no tuple encoder has been configured. This
	// is a caller-fixable setup defect, surfaced immediately and never
	// retried.
	ErrEncoderNotConfigured = errors.New("sanitizer: tuple encoder not configured")
)
