package model

import "errors"

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrStatsNotFound     = errors.New("player stats not found")
)
