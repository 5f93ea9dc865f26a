package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetups/internal/delivery/http/controllers"
	"meetups/internal/delivery/http/middleware"
	"meetups/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "user-1", nil
	}
	return "", errors.New("invalid")
}

type stubUserService struct{}

func (stubUserService) Register(context.Context, string, string, string) (string, *domain.User, error) {
	return "t", &domain.User{Name: "n"}, nil
}

func (stubUserService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "t", &domain.User{Name: "n"}, nil
}

func (stubUserService) GetProfile(context.Context, string) (*domain.User, error) {
	return &domain.User{Name: "n"}, nil
}

func (stubUserService) UpdateProfile(context.Context, string, domain.ProfileUpdate) (*domain.User, error) {
	return &domain.User{Name: "n"}, nil
}

type stubMeetupService struct{}

func (stubMeetupService) CreateMeetup(_ context.Context, m *domain.Meetup, _ string, _ time.Time) (*domain.Meetup, error) {
	return m, nil
}

func (stubMeetupService) GetMeetup(context.Context, string) (*domain.Meetup, error) {
	return &domain.Meetup{}, nil
}

func (stubMeetupService) ListMeetups(context.Context, domain.MeetupCriteria) ([]*domain.Meetup, error) {
	return []*domain.Meetup{}, nil
}

func (stubMeetupService) UpdateMeetup(context.Context, domain.MeetupPatch, string, string, time.Time) (*domain.Meetup, error) {
	return &domain.Meetup{}, nil
}

type stubPinger struct{}

func (stubPinger) PingContext(context.Context) error { return nil }

func newTestHandler() nethttp.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := stubUserService{}
	router := NewRouter(Controllers{
		Auth:   controllers.NewAuthController(logger, users),
		User:   controllers.NewUserController(logger, users),
		Meetup: controllers.NewMeetupController(logger, stubMeetupService{}, domain.SystemClock{}),
		Health: controllers.NewHealthController(logger, stubPinger{}),
	}, stubVerifier{}, logger)
	return NewHandler(router, logger, []string{"http://localhost:3000"})
}

func TestRouter(t *testing.T) {
	const id = "5b0f3c1e-8a4e-4f6b-9a0e-2d7c1b9e4f10"

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"register is public", nethttp.MethodPost, "/auth/register", `{"name":"n","email":"a@b.co","password":"12345678"}`, "", nethttp.StatusCreated},
		{"login is public", nethttp.MethodPost, "/auth/login", `{"email":"a@b.co","password":"x"}`, "", nethttp.StatusOK},
		{"profile requires token", nethttp.MethodGet, "/users/me", "", "", nethttp.StatusUnauthorized},
		{"profile with token", nethttp.MethodGet, "/users/me", "", "good", nethttp.StatusOK},
		{"profile with bad token", nethttp.MethodGet, "/users/me", "", "bad", nethttp.StatusUnauthorized},
		{"create requires token", nethttp.MethodPost, "/meetups", `{}`, "", nethttp.StatusUnauthorized},
		{"filter is public", nethttp.MethodPost, "/meetups/filter", `{}`, "", nethttp.StatusOK},
		{"get is public", nethttp.MethodGet, "/meetups/" + id, "", "", nethttp.StatusOK},
		{"update requires token", nethttp.MethodPatch, "/meetups/" + id, `{"title":"x"}`, "", nethttp.StatusUnauthorized},
		{"update with token", nethttp.MethodPatch, "/meetups/" + id, `{"title":"x"}`, "good", nethttp.StatusOK},
		{"wrong method", nethttp.MethodDelete, "/meetups/" + id, "", "good", nethttp.StatusMethodNotAllowed},
		{"health", nethttp.MethodGet, "/health", "", "", nethttp.StatusOK},
		{"swagger ui", nethttp.MethodGet, "/swagger/index.html", "", "", nethttp.StatusOK},
	}

	handler := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(nethttp.MethodOptions, "/meetups", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rr, req)

	require.Equal(t, nethttp.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
