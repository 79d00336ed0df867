package domain

import "errors"

var (
	// ErrParticipantNotFound - the referenced participant was never registered.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrParticipantExists - another participant already registered with the
	// same name and house number.
	ErrParticipantExists = errors.New("participant already registered")
	// ErrAlreadyBooked - the participant already occupies the requested slot.
	ErrAlreadyBooked = errors.New("slot already chosen by participant")
	// ErrSlotFull - the requested slot is at capacity.
	ErrSlotFull = errors.New("slot is full")
	// ErrUnknownShift - the shift label is not in the configured set.
	ErrUnknownShift = errors.New("unknown shift")
	// ErrBadDate - the requested date could not be parsed.
	ErrBadDate = errors.New("invalid date")
)
