package admin

import "errors"

var (
	ErrForbidden        = errors.New("admin access required")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
