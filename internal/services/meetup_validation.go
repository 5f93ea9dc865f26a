package services

import (
	"time"

	"meetups/internal/domain"
)

// ValidateCreate checks the time window of a new meetup. It returns nil or a
// *domain.RejectionError. Checks run in a fixed order so the reported reason is
// stable when several rules are broken at once.
func ValidateCreate(start, end, now time.Time) error {
	if !domain.SameDay(start, end) {
		return domain.NewRejection(domain.ReasonSameDayViolation)
	}
	if domain.IsPast(start, now) {
		return domain.NewRejection(domain.ReasonInPast)
	}
	if !end.After(start) {
		return domain.NewRejection(domain.ReasonEndBeforeOrEqualStart)
	}
	if !domain.DurationAtLeast(start, end, domain.MinimumMeetupDuration) {
		return domain.NewRejection(domain.ReasonDurationTooShort)
	}
	return nil
}

// ValidateUpdate checks the effective window obtained by merging the proposed
// bounds into the existing meetup. Only the rules touched by the change run;
// with neither bound proposed it always succeeds.
//
// Callers must already have verified that the actor created the meetup and
// that it has not started yet.
func ValidateUpdate(existing *domain.Meetup, proposedStart, proposedEnd *time.Time, now time.Time) error {
	if proposedStart == nil && proposedEnd == nil {
		return nil
	}
	w := existing.Window().Merge(proposedStart, proposedEnd)

	if !domain.SameDay(w.Start, w.End) {
		return domain.NewRejection(domain.ReasonSameDayViolation)
	}
	if proposedStart != nil && domain.IsPast(w.Start, now) {
		return domain.NewRejection(domain.ReasonStartInPast)
	}
	if !w.End.After(w.Start) {
		return domain.NewRejection(domain.ReasonEndNotAfterStart)
	}
	if !domain.DurationAtLeast(w.Start, w.End, domain.MinimumMeetupDuration) {
		return domain.NewRejection(domain.ReasonDurationTooShort)
	}
	return nil
}
