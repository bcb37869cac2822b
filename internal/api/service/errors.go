package service

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown username,
	// unknown email and wrong password all look the same to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("a user with that username already exists")

	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("a user with that email already exists")

	// ErrProjectNameRequired is returned when creating a project without a name.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrProjectNotFound is returned when a project does not exist or is
	// owned by a different user. The two cases are indistinguishable on
	// purpose.
	ErrProjectNotFound = errors.New("project not found")
)
