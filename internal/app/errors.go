package app

import "errors"

// Run reports how the application stopped with one of these.
var (
	ErrAppStartup           = errors.New("app startup error")
	ErrAppShutdownNormal    = errors.New("app shutdown normal")
	ErrAppShutdownWithError = errors.New("app shutdown with error")
)
