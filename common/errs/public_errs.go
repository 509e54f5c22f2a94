package errs

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/withstack"
)

// PublicError is an error whose message is safe to return to API clients.
// The error handler answers it with 400 Bad Request.
type PublicError struct {
	err     error
	message string
}

func (p PublicError) Error() string {
	return p.err.Error()
}

func (p PublicError) Message() string {
	return p.message
}

func (p PublicError) Unwrap() error {
	return p.err
}

func NewPublicError(message string) error {
	return withstack.WithStackDepth(&PublicError{err: errors.New(message), message: message}, 1)
}

// WithPublicMessage exposes err to clients, prefixed when prefix is set.
// It returns nil for a nil err.
func WithPublicMessage(err error, prefix string) error {
	if err == nil {
		return nil
	}
	message := err.Error()
	if prefix != "" {
		message = prefix + ": " + message
	}
	return withstack.WithStackDepth(&PublicError{err: err, message: message}, 1)
}
