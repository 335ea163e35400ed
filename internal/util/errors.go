package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("please submit form first")
	ErrSessionNotFound    = errors.New("invalid session")
	ErrCollegeNotFound    = errors.New("college not found")
	ErrInvalidTestKind    = errors.New("invalid kind")
)
