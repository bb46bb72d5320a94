package services

import "errors"

// Sentinel errors the handler layer branches on to pick the right reply.
var (
	ErrChildNotFound    = errors.New("child not registered")
	ErrFeedingActive    = errors.New("feeding already active")
	ErrNoActiveFeeding  = errors.New("no active feeding")
	ErrSleepActive      = errors.New("sleep already active")
	ErrNoActiveSleep    = errors.New("no active sleep")
	ErrWakeActive       = errors.New("wakefulness already active")
	ErrNoActiveWake     = errors.New("no active wakefulness")
	ErrVolumeOutOfRange = errors.New("volume out of range")
	ErrEmptyNote        = errors.New("note text is empty")
)
