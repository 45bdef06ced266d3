package services

import "errors"

var (
	ErrEmptyQuery    = errors.New("query must not be empty")
	ErrMissingDraft  = errors.New("draft id is required")
	ErrMissingRecipe = errors.New("recipe id is required")
	ErrNoDraft       = errors.New("no draft to save")
	ErrInvalidInput  = errors.New("invalid input")
)
