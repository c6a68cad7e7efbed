package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials is returned on login when either the email is unknown
// or the password does not match. Both cases share one error so the response
// cannot be used to probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized indicates the caller presented no valid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated caller lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidToken indicates a token that is malformed, has a bad signature,
// or does not resolve to any stored row. Not retryable.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired indicates a well-formed token whose validity window has
// passed. A caller holding an expired refresh token must log in again.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenAlreadyUsed indicates a single-use reset token that was consumed before.
var ErrTokenAlreadyUsed = errors.New("token already used")

// ErrConfiguration indicates malformed static configuration. Fatal at
// startup; never returned on a request path.
var ErrConfiguration = errors.New("configuration error")
