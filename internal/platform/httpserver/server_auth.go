package httpserver

import (
	"encoding/json"
	"net/http"

	accounthttp "fundflow/contexts/identity-access/account-service/transport/http"
)

func (s *Server) registerAuthRoutes() {
	s.handle("POST /api/auth/register", s.handleRegister)
	s.handle("POST /api/auth/login", s.handleLogin)
	s.handle("POST /api/auth/logout", s.authenticated(s.handleLogout))
	s.handle("GET /api/user", s.authenticated(s.handleGetUser))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleLogout acknowledges and lets the client drop the token; tokens are
// stateless so there is no server-side session to end.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request, _ string) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, userID string) {
	resp, err := s.accounts.Handler.GetUserHandler(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
