package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotCreator         = errors.New("only the creator can modify this meetup")
	ErrAlreadyOccurred    = errors.New("meetup has already started and can no longer be modified")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUpdate        = errors.New("no data provided to update")
	ErrInvalidInput       = errors.New("invalid input")
)

// RejectionReason identifies why a meetup time window was rejected.
type RejectionReason string

const (
	ReasonSameDayViolation      RejectionReason = "SAME_DAY_VIOLATION"
	ReasonInPast                RejectionReason = "IN_PAST"
	ReasonStartInPast           RejectionReason = "START_IN_PAST"
	ReasonEndBeforeOrEqualStart RejectionReason = "END_BEFORE_OR_EQUAL_START"
	ReasonEndNotAfterStart      RejectionReason = "END_NOT_AFTER_START"
	ReasonDurationTooShort      RejectionReason = "DURATION_TOO_SHORT"
)

var rejectionMessages = map[RejectionReason]string{
	ReasonSameDayViolation:      "start and end must be on the same day",
	ReasonInPast:                "meetup cannot be scheduled in the past",
	ReasonStartInPast:           "new start time cannot be in the past",
	ReasonEndBeforeOrEqualStart: "end time has to be greater than start time",
	ReasonEndNotAfterStart:      "end time must be after start time",
	ReasonDurationTooShort:      fmt.Sprintf("meetup must last at least %s", MinimumMeetupDuration),
}

// RejectionError is returned when a proposed time window is not admissible.
type RejectionError struct {
	Reason  RejectionReason
	Message string
}

// NewRejection returns a RejectionError with the default message for reason.
func NewRejection(reason RejectionReason) *RejectionError {
	return &RejectionError{Reason: reason, Message: rejectionMessages[reason]}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// IsRejection reports whether err is a RejectionError with the given reason.
func IsRejection(err error, reason RejectionReason) bool {
	var rej *RejectionError
	return errors.As(err, &rej) && rej.Reason == reason
}
