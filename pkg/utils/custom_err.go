package utils

import "errors"

var (
	ErrSiteNotFound      = errors.New("site not found")
	ErrSiteAlreadyExists = errors.New("site already exists")
	ErrDatabaseError     = errors.New("database error")

	ErrLocationNotFound   = errors.New("location could not be resolved")
	ErrWeatherUnavailable = errors.New("weather forecast unavailable")
	ErrTimeNotCovered     = errors.New("visit time not covered by sensor history")
	ErrNoDetourCandidates = errors.New("no resolvable detour candidates")
	ErrAssistantFailure   = errors.New("text generation failed")
)
