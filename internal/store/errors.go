package store

import "errors"

var (
	ErrNotFound        = errors.New("session not found")
	ErrAlreadyExists   = errors.New("session already exists")
	ErrVersionConflict = errors.New("session was modified concurrently")
)
