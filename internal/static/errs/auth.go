package errs

import "errors"

var (
	MissingAuthorization = errors.New("authorization header missing")
	InvalidToken         = errors.New("invalid token")
	UnexpectedSigning    = errors.New("unexpected signing method")
)
