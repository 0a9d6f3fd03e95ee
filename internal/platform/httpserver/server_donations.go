package httpserver

import (
	"encoding/json"
	"net/http"

	donationhttp "fundflow/contexts/fundraising/donation-service/transport/http"
)

func (s *Server) registerDonationRoutes() {
	s.handle("POST /api/donations", s.authenticated(s.handleSubmitDonation))
	s.handle("GET /api/donations", s.authenticated(s.handleListDonations))
	s.handle("GET /api/donations/{donation_id}", s.authenticated(s.handleGetDonation))
	s.handle("PUT /api/donations/{donation_id}", s.authenticated(s.handleUpdateDonation))
	s.handle("DELETE /api/donations/{donation_id}", s.authenticated(s.handleDeleteDonation))
}

func (s *Server) handleSubmitDonation(w http.ResponseWriter, r *http.Request, userID string) {
	var req donationhttp.SubmitDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.donations.Handler.SubmitDonationHandler(r.Context(), userID, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListDonations(w http.ResponseWriter, r *http.Request, userID string) {
	resp, err := s.donations.Handler.ListDonationsHandler(r.Context(), userID, pageParam(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDonation(w http.ResponseWriter, r *http.Request, userID string) {
	resp, err := s.donations.Handler.GetDonationHandler(r.Context(), userID, r.PathValue("donation_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateDonation(w http.ResponseWriter, r *http.Request, userID string) {
	if err := s.donations.Handler.UpdateDonationHandler(r.Context(), userID, r.PathValue("donation_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
}

func (s *Server) handleDeleteDonation(w http.ResponseWriter, r *http.Request, userID string) {
	if err := s.donations.Handler.DeleteDonationHandler(r.Context(), userID, r.PathValue("donation_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
