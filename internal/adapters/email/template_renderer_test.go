package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetups/internal/domain"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("welcome", &domain.WelcomeMessageEmailData{Email: "ana@example.com", Name: "Ana <admin>"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Meetups, Ana <admin>", subject)
	assert.Contains(t, html, "Ana &lt;admin&gt;")
	assert.Contains(t, html, "ana@example.com")
	assert.Contains(t, text, "Welcome, Ana <admin>!")
}

func TestTemplateRenderer_MeetupCreated(t *testing.T) {
	r := NewTemplateRenderer()
	est := time.FixedZone("EST", -5*60*60)

	data := &domain.MeetupCreatedEmailData{
		Email:         "ana@example.com",
		Name:          "Ana",
		MeetupID:      "m-1",
		Title:         "Adopting bitcoin",
		LocationName:  "Parque Cuscatlan",
		StartDateTime: time.Date(2030, 1, 15, 5, 0, 0, 0, est),
		EndDateTime:   time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	subject, html, text, err := r.Render("meetup_created", data)
	require.NoError(t, err)
	assert.Equal(t, `Your meetup "Adopting bitcoin" is scheduled`, subject)
	assert.Contains(t, html, "Parque Cuscatlan")
	assert.Contains(t, text, "Starts: Tue, 15 Jan 2030 10:00 UTC")
	assert.Contains(t, text, "Ends:   Tue, 15 Jan 2030 12:00 UTC")
	assert.Contains(t, text, "Reference: m-1")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("does_not_exist", nil)
	require.Error(t, err)
}
