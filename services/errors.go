// services/errors.go
package services

import (
	"errors"
	"strings"
)

var (
	// ErrNoActiveSeason is returned when an exercise is recorded while no
	// season is open.
	ErrNoActiveSeason = errors.New("no active season")

	// ErrSeasonNotFound is returned for lookups with an unknown season id.
	ErrSeasonNotFound = errors.New("season not found")

	// ErrParticipantNotFound is returned for lookups with an unknown
	// participant id.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrNameTaken is returned when creating a participant with a name that
	// is already registered.
	ErrNameTaken = errors.New("a participant with that name already exists")
)

// ValidationError carries the human-readable messages for rejected input.
// It is returned before any store interaction takes place.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
