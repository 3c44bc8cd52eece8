package utils

import "errors"

var (
	ErrTourNotFound         = errors.New("tour not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidDate          = errors.New("invalid date parameter")
	ErrInvalidLanguage      = errors.New("unsupported language")
	ErrDatabaseError        = errors.New("database error")
	ErrInvalidShareToken    = errors.New("invalid share token")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
