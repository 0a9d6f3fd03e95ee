package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func submitDonation(t *testing.T, server *Server, token string, campaignID string, amount string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, server, http.MethodPost, "/api/donations", token,
		`{"campaign_id":"`+campaignID+`","amount":`+amount+`}`)
}

func TestSubmitDonationRequiresAuth(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/donations", "",
		`{"campaign_id":"c1","amount":10}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSubmitDonationIncrementsCampaignBalance(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, token)

	rr := submitDonation(t, server, token, campaignID, "25.5")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	if data["amount"] != "25.50" {
		t.Fatalf("expected string amount, got %v", data["amount"])
	}

	rr = doJSON(t, server, http.MethodGet, "/api/campaigns/"+campaignID, "", "")
	campaign, _ := decodeBody(t, rr)["data"].(map[string]any)
	if campaign["current_amount"] != "25.50" {
		t.Fatalf("expected updated balance, got %v", campaign["current_amount"])
	}
}

func TestSubmitDonationToInactiveCampaign(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, token)

	rr := doJSON(t, server, http.MethodPut, "/api/campaigns/"+campaignID, token,
		`{"status":"inactive"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("deactivate failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = submitDonation(t, server, token, campaignID, "10")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["message"] != "Campaign is not active." {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestSubmitDonationToUnknownCampaign(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")

	rr := submitDonation(t, server, token, "missing", "10")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["message"] != "The selected campaign id is invalid." {
		t.Fatalf("unexpected message %v", body["message"])
	}
	fields, _ := body["errors"].(map[string]any)
	if _, ok := fields["campaign_id"]; !ok {
		t.Fatalf("expected campaign_id errors, got %v", fields)
	}
}

func TestSubmitDonationWithoutAmount(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, token)

	rr := doJSON(t, server, http.MethodPost, "/api/donations", token,
		`{"campaign_id":"`+campaignID+`"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	fields, _ := decodeBody(t, rr)["errors"].(map[string]any)
	if _, ok := fields["amount"]; !ok {
		t.Fatalf("expected amount errors, got %v", fields)
	}
}

func TestGetDonationScopedToDonor(t *testing.T) {
	server := newTestServer()
	ownerToken := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, ownerToken)

	rr := submitDonation(t, server, ownerToken, campaignID, "10")
	if rr.Code != http.StatusCreated {
		t.Fatalf("donate failed: %d body=%s", rr.Code, rr.Body.String())
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	donationID, _ := data["id"].(string)

	otherToken := registerAndLogin(t, server, "bob@example.com")
	rr = doJSON(t, server, http.MethodGet, "/api/donations/"+donationID, otherToken, "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["message"] != "Forbidden" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/donations/"+donationID, ownerToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListDonationsOnlyShowsOwn(t *testing.T) {
	server := newTestServer()
	adaToken := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, adaToken)
	bobToken := registerAndLogin(t, server, "bob@example.com")

	if rr := submitDonation(t, server, adaToken, campaignID, "10"); rr.Code != http.StatusCreated {
		t.Fatalf("donate failed: %d", rr.Code)
	}
	if rr := submitDonation(t, server, bobToken, campaignID, "20"); rr.Code != http.StatusCreated {
		t.Fatalf("donate failed: %d", rr.Code)
	}

	rr := doJSON(t, server, http.MethodGet, "/api/donations", bobToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one donation, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["amount"] != "20.00" {
		t.Fatalf("unexpected donation %v", first)
	}
}

func TestUpdateDonationNotImplemented(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")

	rr := doJSON(t, server, http.MethodPut, "/api/donations/any", token, `{"amount":10}`)
	if rr.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["message"] != "Not implemented" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestDeleteDonationAcknowledges(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")

	rr := doJSON(t, server, http.MethodDelete, "/api/donations/any", token, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodGet, "/metrics", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
