package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetups/internal/domain"
)

type meetupService struct {
	meetupRepo     domain.MeetupRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewMeetupService creates a MeetupService. emailService may be nil, in which
// case no confirmation emails are sent.
func NewMeetupService(meetupRepo domain.MeetupRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.MeetupService {
	return &meetupService{
		meetupRepo:     meetupRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *meetupService) CreateMeetup(ctx context.Context, m *domain.Meetup, actorID string, now time.Time) (*domain.Meetup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if actorID == "" {
		return nil, fmt.Errorf("%w: meetup creator is required", domain.ErrInvalidInput)
	}
	if err := ValidateCreate(m.StartDateTime, m.EndDateTime, now); err != nil {
		return nil, err
	}

	m.CreatedBy = actorID
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.meetupRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create meetup: %w", err)
	}

	s.notifyCreated(ctx, m)
	return m, nil
}

// notifyCreated emails the creator a confirmation. Failures are logged only;
// the meetup is already stored.
func (s *meetupService) notifyCreated(ctx context.Context, m *domain.Meetup) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, m.CreatedBy)
	if err != nil {
		s.logger.WarnContext(ctx, "meetup confirmation skipped", "meetup_id", m.ID, "err", err)
		return
	}
	data := &domain.MeetupCreatedEmailData{
		Email:         user.Email,
		Name:          user.Name,
		MeetupID:      m.ID,
		Title:         m.Title,
		LocationName:  m.LocationName,
		StartDateTime: m.StartDateTime,
		EndDateTime:   m.EndDateTime,
	}
	if err := s.emailService.SendMeetupCreated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "meetup confirmation failed", "meetup_id", m.ID, "err", err)
	}
}

func (s *meetupService) GetMeetup(ctx context.Context, id string) (*domain.Meetup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, err := s.meetupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meetup: %w", err)
	}
	return m, nil
}

func (s *meetupService) ListMeetups(ctx context.Context, criteria domain.MeetupCriteria) ([]*domain.Meetup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	meetups, err := s.meetupRepo.Find(ctx, BuildMeetupFilter(criteria))
	if err != nil {
		return nil, fmt.Errorf("find meetups: %w", err)
	}
	if meetups == nil {
		meetups = []*domain.Meetup{}
	}
	return meetups, nil
}

func (s *meetupService) UpdateMeetup(ctx context.Context, patch domain.MeetupPatch, id, actorID string, now time.Time) (*domain.Meetup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.meetupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meetup: %w", err)
	}
	if existing.CreatedBy != actorID {
		return nil, domain.ErrNotCreator
	}
	if domain.IsPast(existing.StartDateTime, now) {
		return nil, domain.ErrAlreadyOccurred
	}
	if err := ValidateUpdate(existing, patch.StartDateTime, patch.EndDateTime, now); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	updated, err := s.meetupRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update meetup: %w", err)
	}
	return updated, nil
}
