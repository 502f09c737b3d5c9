package models

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNoLocationPicker     = errors.New("form has no location picker")
	ErrMapUnavailable       = errors.New("map unavailable")
)

const (
	PlaceholderDescription = "no description available"
	PlaceholderAssignee    = "unassigned"
	UnknownLocation        = "Unknown"
)
