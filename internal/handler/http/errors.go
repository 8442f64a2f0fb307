package http

import "errors"

// Errors returned while parsing the Authorization header. The auth
// middleware answers 401 for all of them; the distinction only shows up
// in logs.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)
