package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email.
type WelcomeMessageEmailData struct {
	Email string
	Name  string
}

// MeetupCreatedEmailData holds data for the email confirming a new meetup to its creator.
type MeetupCreatedEmailData struct {
	Email         string
	Name          string
	MeetupID      string
	Title         string
	LocationName  string
	StartDateTime time.Time
	EndDateTime   time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
	SendMeetupCreated(ctx context.Context, data *MeetupCreatedEmailData) error
}
