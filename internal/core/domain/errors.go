package domain

import "errors"

var (
	// ErrValidation covers malformed or missing input; the caller should
	// correct the request and retry.
	ErrValidation = errors.New("invalid input")

	// ErrUserExists is returned when a registration collides with an
	// existing username or email.
	ErrUserExists = errors.New("username or email already in use")

	// ErrInvalidCredentials is the single login failure. It deliberately
	// does not distinguish an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is internal to the store; the auth service translates
	// it before it reaches the boundary.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenInvalid covers a token whose signature or structure does not
	// check out.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired covers a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnauthenticated means no usable credential was presented.
	ErrUnauthenticated = errors.New("missing or invalid token")

	// ErrForbidden means the credential is valid but the role is not in the
	// operation's required set.
	ErrForbidden = errors.New("forbidden - insufficient privileges")

	// ErrInvalidHashFormat is a data-integrity fault in a stored password
	// hash. It surfaces as a server-side error, never as a login failure.
	ErrInvalidHashFormat = errors.New("malformed password hash")
)
