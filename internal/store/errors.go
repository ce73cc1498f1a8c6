package store

import "errors"

var (
	// ErrConflict is returned when a unique constraint rejects an insert.
	ErrConflict = errors.New("username or email already in use")

	// ErrCredentials is returned for any failed login attempt. It is the
	// same error whether the email is unknown or the password is wrong, so
	// callers cannot reveal which field failed.
	ErrCredentials = errors.New("incorrect email or password")
)

// ValidationError reports malformed or missing input. Its message is safe to
// show to clients.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
