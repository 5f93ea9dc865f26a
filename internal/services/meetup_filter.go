package services

import (
	"strings"
	"time"

	"meetups/internal/domain"
)

// BuildMeetupFilter turns optional search criteria into a conjunctive filter.
// Absent criteria add no condition, so empty criteria match every meetup.
//
// Title matching is a case-insensitive substring match. Date bounds apply to
// the UTC date of the meetup start. StartTime bounds the start time of day from
// below and EndTime bounds the end time of day from above.
func BuildMeetupFilter(c domain.MeetupCriteria) domain.MeetupFilter {
	var conds []domain.Condition
	add := func(field string, op domain.FilterOp, v any) {
		conds = append(conds, domain.Condition{Field: field, Op: op, Value: v})
	}

	if c.Title != nil {
		if title := strings.TrimSpace(*c.Title); title != "" {
			add(domain.FieldTitle, domain.OpContainsFold, title)
		}
	}
	if c.StartDate != nil {
		add(domain.FieldStartDate, domain.OpGTE, truncateToDate(*c.StartDate))
	}
	if c.EndDate != nil {
		add(domain.FieldStartDate, domain.OpLTE, truncateToDate(*c.EndDate))
	}
	if c.StartTime != nil {
		add(domain.FieldStartTime, domain.OpGTE, c.StartTime.String())
	}
	if c.EndTime != nil {
		add(domain.FieldEndTime, domain.OpLTE, c.EndTime.String())
	}
	if b := c.Boundaries; b != nil {
		add(domain.FieldLatitude, domain.OpGTE, b.MinLat)
		add(domain.FieldLatitude, domain.OpLTE, b.MaxLat)
		add(domain.FieldLongitude, domain.OpGTE, b.MinLng)
		add(domain.FieldLongitude, domain.OpLTE, b.MaxLng)
	}
	return domain.MeetupFilter{Conditions: conds}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
