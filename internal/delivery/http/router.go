package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"meetups/internal/delivery/http/controllers"
	"meetups/internal/delivery/http/middleware"
	"meetups/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth   *controllers.AuthController
	User   *controllers.UserController
	Meetup *controllers.MeetupController
	Health *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/register", c.Auth.Register)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Users
	mux.HandleFunc("GET /users/me", requireAuth(c.User.GetMe))
	mux.HandleFunc("PATCH /users/me", requireAuth(c.User.UpdateMe))

	// Meetups
	mux.HandleFunc("POST /meetups", requireAuth(c.Meetup.CreateMeetup))
	mux.HandleFunc("POST /meetups/filter", c.Meetup.FilterMeetups)
	mux.HandleFunc("GET /meetups/{id}", c.Meetup.GetMeetup)
	mux.HandleFunc("PATCH /meetups/{id}", requireAuth(c.Meetup.UpdateMeetup))

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request ID, logging and CORS middleware.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(allowedOrigins, router),
		),
	)
}
