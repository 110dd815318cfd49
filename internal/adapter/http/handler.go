package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"campaign-tracker/internal/core/port"
)

// Options configure authentication and submission rate limiting.
type Options struct {
	// AuthSecret is the HMAC key bearer tokens are signed with.
	AuthSecret []byte
	// SubmitRate and SubmitBurst bound tweet submissions per viewer. A zero
	// SubmitRate disables the limit.
	SubmitRate  rate.Limit
	SubmitBurst int
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.CampaignUseCase
	logger  *slog.Logger
	router  chi.Router
	secret  []byte
	limiter *viewerLimiter
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:     svc,
		logger:  logger,
		secret:  opts.AuthSecret,
		limiter: newViewerLimiter(opts.SubmitRate, opts.SubmitBurst),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleUpsertCampaign)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaigns)
			r.Delete("/", h.handleDeleteCampaigns)
			r.Patch("/", h.handlePatchCampaigns)
			r.With(h.limitSubmissions).Post("/tweets", h.handleSubmitTweets)
			r.Delete("/tweets/{tweetID}", h.handleDeleteTweet)
		})
		r.Get("/users/{screenNames}", h.handleResolveUsers)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
