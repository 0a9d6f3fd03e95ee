package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	campaignservice "fundflow/contexts/fundraising/campaign-service"
	campaignerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	donationservice "fundflow/contexts/fundraising/donation-service"
	donationerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	accountservice "fundflow/contexts/identity-access/account-service"
	accounterrors "fundflow/contexts/identity-access/account-service/domain/errors"
	_ "fundflow/internal/platform/httpserver/docs"
	"fundflow/internal/platform/metrics"
	"fundflow/internal/shared/validation"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	accounts  accountservice.Module
	campaigns campaignservice.Module
	donations donationservice.Module
}

func New(
	accounts accountservice.Module,
	campaigns campaignservice.Module,
	donations donationservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		accounts:  accounts,
		campaigns: campaigns,
		donations: donations,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", metrics.Handler())

	s.registerAuthRoutes()
	s.registerCampaignRoutes()
	s.registerDonationRoutes()
}

func (s *Server) handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, metrics.Instrument(pattern, handler))
}

// authenticated wraps a handler with bearer token resolution. The principal id
// is passed through rather than stored on the request context so handlers
// stay explicit about who is acting.
func (s *Server) authenticated(handler func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.resolveBearer(r)
		if err != nil {
			writeUnauthenticated(w)
			return
		}
		handler(w, r, userID)
	}
}

func (s *Server) resolveBearer(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", accounterrors.ErrUnauthenticated
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", accounterrors.ErrUnauthenticated
	}
	return s.accounts.Handler.ResolveToken(strings.TrimSpace(token))
}

func pageParam(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: vErr.Message(),
			Errors:  vErr.Fields(),
		})
	case errors.Is(err, donationerrors.ErrCampaignNotActive):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Campaign is not active."})
	case errors.Is(err, accounterrors.ErrUnauthenticated):
		writeUnauthenticated(w)
	case errors.Is(err, campaignerrors.ErrForbidden),
		errors.Is(err, donationerrors.ErrForbidden):
		writeJSON(w, http.StatusForbidden, messageResponse{Message: "Forbidden"})
	case errors.Is(err, campaignerrors.ErrCampaignNotFound),
		errors.Is(err, donationerrors.ErrDonationNotFound),
		errors.Is(err, accounterrors.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Not found."})
	case errors.Is(err, donationerrors.ErrNotImplemented):
		writeJSON(w, http.StatusNotImplemented, messageResponse{Message: "Not implemented"})
	default:
		s.logger.Error("unhandled domain error",
			"event", "http_internal_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server Error"})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Request body must be valid JSON."})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
