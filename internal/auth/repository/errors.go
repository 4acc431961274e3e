package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToList   = errors.New("failed to list users")
	ErrFailedToUpdate = errors.New("failed to update user")
	ErrFailedToDelete = errors.New("failed to delete user")
	ErrDuplicateEmail = errors.New("email already exists")
)
