package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"meetups/internal/domain"
)

const meetupColumns = `id, created_by, title, description, start_date_time, end_date_time, location_name, latitude, longitude, created_at, updated_at`

type meetupRepository struct {
	DB *sql.DB
}

func NewMeetupRepository(db *sql.DB) domain.MeetupRepository {
	return &meetupRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeetup(row rowScanner) (*domain.Meetup, error) {
	m := &domain.Meetup{}
	err := row.Scan(
		&m.ID, &m.CreatedBy, &m.Title, &m.Description, &m.StartDateTime, &m.EndDateTime,
		&m.LocationName, &m.Latitude, &m.Longitude, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *meetupRepository) Create(ctx context.Context, m *domain.Meetup) error {
	query := `
		INSERT INTO meetups (created_by, title, description, start_date_time, end_date_time, location_name, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.CreatedBy, m.Title, m.Description, m.StartDateTime, m.EndDateTime,
		m.LocationName, m.Latitude, m.Longitude, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
}

func (r *meetupRepository) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	query := `SELECT ` + meetupColumns + ` FROM meetups WHERE id = $1`
	m, err := scanMeetup(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *meetupRepository) Update(ctx context.Context, id string, p domain.MeetupPatch) (*domain.Meetup, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	set := func(column string, v any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, v)
		n++
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.LocationName != nil {
		set("location_name", *p.LocationName)
	}
	if p.StartDateTime != nil {
		set("start_date_time", *p.StartDateTime)
	}
	if p.EndDateTime != nil {
		set("end_date_time", *p.EndDateTime)
	}
	if p.Latitude != nil {
		set("latitude", *p.Latitude)
	}
	if p.Longitude != nil {
		set("longitude", *p.Longitude)
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE meetups SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, meetupColumns)
	m, err := scanMeetup(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *meetupRepository) Find(ctx context.Context, filter domain.MeetupFilter) ([]*domain.Meetup, error) {
	where, args, err := buildMeetupWhere(filter)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + meetupColumns + ` FROM meetups` + where + ` ORDER BY start_date_time, id`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetups := make([]*domain.Meetup, 0)
	for rows.Next() {
		m, err := scanMeetup(rows)
		if err != nil {
			return nil, err
		}
		meetups = append(meetups, m)
	}
	return meetups, rows.Err()
}

// filterColumns maps filter fields to SQL expressions. Date and time-of-day
// fields are evaluated in UTC.
var filterColumns = map[string]string{
	domain.FieldTitle:     "title",
	domain.FieldStartDate: "(start_date_time AT TIME ZONE 'UTC')::date",
	domain.FieldStartTime: "(start_date_time AT TIME ZONE 'UTC')::time",
	domain.FieldEndTime:   "(end_date_time AT TIME ZONE 'UTC')::time",
	domain.FieldLatitude:  "latitude",
	domain.FieldLongitude: "longitude",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildMeetupWhere translates filter conditions into a WHERE clause joined with AND.
func buildMeetupWhere(filter domain.MeetupFilter) (string, []any, error) {
	if filter.MatchAll() {
		return "", nil, nil
	}
	clauses := make([]string, 0, len(filter.Conditions))
	args := make([]any, 0, len(filter.Conditions))
	for i, c := range filter.Conditions {
		column, ok := filterColumns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter field %q", c.Field)
		}
		placeholder := fmt.Sprintf("$%d", i+1)
		value := c.Value
		switch c.Field {
		case domain.FieldStartDate:
			d, ok := value.(time.Time)
			if !ok {
				return "", nil, fmt.Errorf("filter field %q expects a date", c.Field)
			}
			value = d.Format(time.DateOnly)
			placeholder += "::date"
		case domain.FieldStartTime, domain.FieldEndTime:
			placeholder += "::time"
		}

		switch c.Op {
		case domain.OpContainsFold:
			s, ok := value.(string)
			if !ok {
				return "", nil, fmt.Errorf("filter field %q expects text", c.Field)
			}
			clauses = append(clauses, fmt.Sprintf("%s ILIKE %s", column, placeholder))
			value = "%" + likeEscaper.Replace(s) + "%"
		case domain.OpGTE:
			clauses = append(clauses, fmt.Sprintf("%s >= %s", column, placeholder))
		case domain.OpLTE:
			clauses = append(clauses, fmt.Sprintf("%s <= %s", column, placeholder))
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", c.Op)
		}
		args = append(args, value)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
