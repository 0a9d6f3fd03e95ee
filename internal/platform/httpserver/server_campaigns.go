package httpserver

import (
	"encoding/json"
	"net/http"

	campaignhttp "fundflow/contexts/fundraising/campaign-service/transport/http"
)

func (s *Server) registerCampaignRoutes() {
	s.handle("GET /api/campaigns", s.handleListCampaigns)
	s.handle("GET /api/campaigns/{campaign_id}", s.handleGetCampaign)
	s.handle("POST /api/campaigns", s.authenticated(s.handleCreateCampaign))
	s.handle("PUT /api/campaigns/{campaign_id}", s.authenticated(s.handleUpdateCampaign))
	s.handle("DELETE /api/campaigns/{campaign_id}", s.authenticated(s.handleDeleteCampaign))
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ListCampaignsHandler(r.Context(), pageParam(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request, userID string) {
	var req campaignhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.campaigns.Handler.CreateCampaignHandler(r.Context(), userID, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request, userID string) {
	var req campaignhttp.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	resp, err := s.campaigns.Handler.UpdateCampaignHandler(r.Context(), userID, r.PathValue("campaign_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request, userID string) {
	if err := s.campaigns.Handler.DeleteCampaignHandler(r.Context(), userID, r.PathValue("campaign_id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
