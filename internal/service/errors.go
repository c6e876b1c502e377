package service

import "errors"

// Sentinel errors returned by the services. Handlers map these onto HTTP
// status codes instead of matching on error strings.
var (
	ErrTodoNotFound       = errors.New("todo with supplied ID does not exist")
	ErrEventNotFound      = errors.New("event with supplied ID does not exist")
	ErrUserExists         = errors.New("user with supplied email already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials passed")
	ErrNotEventCreator    = errors.New("operation allowed only by the event creator")
	ErrValidation         = errors.New("invalid request payload")
)
