package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	campaignservice "fundflow/contexts/fundraising/campaign-service"
	donationservice "fundflow/contexts/fundraising/donation-service"
	accountservice "fundflow/contexts/identity-access/account-service"
	"fundflow/internal/platform/mail"
	"fundflow/internal/platform/messaging"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := accountservice.NewInMemoryModule("test-secret", logger)
	campaigns := campaignservice.NewInMemoryModule(nil, logger)
	bus := messaging.NewBus(logger)
	donations := donationservice.NewInMemoryModule(
		campaigns.Store,
		bus,
		bus,
		mail.LogMailer{Logger: logger},
		logger,
	)
	return New(accounts, campaigns, donations, logger, ":0")
}

func doJSON(t *testing.T, server *Server, method string, path string, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, rr.Body.String())
	}
	return out
}

func registerAndLogin(t *testing.T, server *Server, email string) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/auth/register", "",
		`{"name":"Ada","email":"`+email+`","password":"correct horse"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+email+`","password":"correct horse"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d body=%s", rr.Code, rr.Body.String())
	}
	token, _ := decodeBody(t, rr)["token"].(string)
	if token == "" {
		t.Fatal("expected token in login response")
	}
	return token
}

func createCampaign(t *testing.T, server *Server, token string) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/campaigns", token,
		`{"title":"River Cleanup","description":"Gloves and boats.","goal_amount":"5000.00"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create campaign failed: %d body=%s", rr.Code, rr.Body.String())
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatal("expected campaign id")
	}
	return id
}
