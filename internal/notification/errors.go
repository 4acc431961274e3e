package notification

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrMailerUnavailable = errors.New("email is not configured")
)
