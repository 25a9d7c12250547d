package services

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidCategory     = errors.New("goal category does not match this endpoint")
	ErrInvalidGoalDuration = errors.New("goal target date must be after its start date")
)
