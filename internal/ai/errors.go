package ai

import "errors"

var (
	ErrEmptyText         = errors.New("text is required")
	ErrEmptyQuery        = errors.New("search query is required")
	ErrBadModelOutput    = errors.New("model returned unparseable output")
	ErrSearchUnavailable = errors.New("semantic search is not configured")
)
