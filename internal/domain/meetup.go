package domain

import (
	"context"
	"time"
)

// Meetup represents a scheduled, geolocated event created by a user.
// swagger:model Meetup
type Meetup struct {
	ID            string    `json:"id"`
	CreatedBy     string    `json:"createdBy"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	LocationName  string    `json:"locationName"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewMeetup returns a Meetup with the given content fields. ID, CreatedBy and timestamps are set by the service and repository.
func NewMeetup(title, description, locationName string, start, end time.Time, latitude, longitude float64) *Meetup {
	return &Meetup{
		Title:         title,
		Description:   description,
		LocationName:  locationName,
		StartDateTime: start,
		EndDateTime:   end,
		Latitude:      latitude,
		Longitude:     longitude,
	}
}

// Window returns the meetup's scheduled time window.
func (m *Meetup) Window() TimeWindow {
	return TimeWindow{Start: m.StartDateTime, End: m.EndDateTime}
}

// MeetupPatch holds the fields of a partial meetup update. Nil fields are left untouched.
type MeetupPatch struct {
	Title         *string
	Description   *string
	LocationName  *string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	Latitude      *float64
	Longitude     *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p MeetupPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.LocationName == nil &&
		p.StartDateTime == nil && p.EndDateTime == nil &&
		p.Latitude == nil && p.Longitude == nil
}

// ChangesWindow reports whether the patch moves either bound of the time window.
func (p MeetupPatch) ChangesWindow() bool {
	return p.StartDateTime != nil || p.EndDateTime != nil
}

// BoundingBox is a rectangular latitude/longitude area used to filter meetups.
// swagger:model BoundingBox
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// MeetupCriteria holds the optional search criteria for listing meetups.
// Dates are calendar days (time of day ignored); times are minutes since midnight.
type MeetupCriteria struct {
	Title      *string
	StartDate  *time.Time
	EndDate    *time.Time
	StartTime  *ClockTime
	EndTime    *ClockTime
	Boundaries *BoundingBox
}

// Filter fields understood by MeetupRepository.Find.
const (
	FieldTitle     = "title"
	FieldStartDate = "start_date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

// FilterOp is a comparison operator in a filter condition.
type FilterOp string

const (
	OpContainsFold FilterOp = "contains_fold"
	OpGTE          FilterOp = "gte"
	OpLTE          FilterOp = "lte"
)

// Condition is a single field predicate. Value is a string for title and
// clock-time fields, a time.Time for date fields and a float64 for coordinates.
type Condition struct {
	Field string
	Op    FilterOp
	Value any
}

// MeetupFilter is a conjunction of conditions. The zero value matches every meetup.
type MeetupFilter struct {
	Conditions []Condition
}

// MatchAll reports whether the filter imposes no constraint.
func (f MeetupFilter) MatchAll() bool {
	return len(f.Conditions) == 0
}

// MeetupRepository defines the interface for meetup storage.
type MeetupRepository interface {
	Create(ctx context.Context, m *Meetup) error
	GetByID(ctx context.Context, id string) (*Meetup, error)
	// Update applies every non-nil patch field in a single statement and returns the stored row.
	Update(ctx context.Context, id string, patch MeetupPatch) (*Meetup, error)
	Find(ctx context.Context, filter MeetupFilter) ([]*Meetup, error)
}

// MeetupService defines the business logic for meetups.
type MeetupService interface {
	CreateMeetup(ctx context.Context, m *Meetup, actorID string, now time.Time) (*Meetup, error)
	GetMeetup(ctx context.Context, id string) (*Meetup, error)
	ListMeetups(ctx context.Context, criteria MeetupCriteria) ([]*Meetup, error)
	UpdateMeetup(ctx context.Context, patch MeetupPatch, id, actorID string, now time.Time) (*Meetup, error)
}
