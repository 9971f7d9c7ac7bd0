package service

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both "no such account" and
	// "wrong password" so login failures cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrNotFound   = errors.New("not found")
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrUpstream marks failures of the external completion service.
	ErrUpstream = errors.New("completion service failure")
)
