package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrForbidden          = errors.New("no access to workspace")

	// LLM failures. Generation is all-or-nothing: any of these aborts the
	// whole recommend flow, unlike place lookups which degrade silently.
	ErrResponseFormat       = errors.New("llm response is not valid json")
	ErrInvalidResponseShape = errors.New("llm response missing required fields")
	ErrGenerationFailed     = errors.New("travel plan generation failed")
)
