package httpserver

import (
	"net/http"
	"testing"
)

func TestCreateCampaignRequiresAuth(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/campaigns", "",
		`{"title":"X","description":"Y","goal_amount":100}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCreateCampaignSerializesAmountsAsStrings(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")

	rr := doJSON(t, server, http.MethodPost, "/api/campaigns", token,
		`{"title":"River Cleanup","description":"Gloves and boats.","goal_amount":"5000.00"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	if data["goal_amount"] != "5000.00" {
		t.Fatalf("expected string goal amount, got %v", data["goal_amount"])
	}
	if data["current_amount"] != "0.00" {
		t.Fatalf("expected zero balance, got %v", data["current_amount"])
	}
	if data["status"] != "active" {
		t.Fatalf("expected active status, got %v", data["status"])
	}
}

func TestCreateCampaignValidationErrorsAreFieldIndexed(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")

	rr := doJSON(t, server, http.MethodPost, "/api/campaigns", token, `{"title":""}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	fields, _ := body["errors"].(map[string]any)
	if _, ok := fields["title"]; !ok {
		t.Fatalf("expected title errors, got %v", fields)
	}
	if _, ok := fields["goal_amount"]; !ok {
		t.Fatalf("expected goal_amount errors, got %v", fields)
	}
}

func TestListCampaignsIsPublic(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	createCampaign(t, server, token)

	rr := doJSON(t, server, http.MethodGet, "/api/campaigns", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one campaign, got %d", len(items))
	}
	meta, _ := body["meta"].(map[string]any)
	if meta["per_page"] != float64(10) {
		t.Fatalf("expected per_page 10, got %v", meta["per_page"])
	}
}

func TestGetCampaignEmbedsOwner(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, token)

	rr := doJSON(t, server, http.MethodGet, "/api/campaigns/"+campaignID, "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	data, _ := decodeBody(t, rr)["data"].(map[string]any)
	owner, _ := data["user"].(map[string]any)
	if owner == nil || owner["id"] == "" {
		t.Fatalf("expected embedded owner, got %v", data)
	}
}

func TestGetCampaignMissingNotFound(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodGet, "/api/campaigns/missing", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if decodeBody(t, rr)["message"] != "Not found." {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestUpdateCampaignByNonOwnerForbidden(t *testing.T) {
	server := newTestServer()
	ownerToken := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, ownerToken)
	otherToken := registerAndLogin(t, server, "bob@example.com")

	rr := doJSON(t, server, http.MethodPut, "/api/campaigns/"+campaignID, otherToken,
		`{"title":"Hijacked"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["message"] != "Forbidden" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestDeleteCampaignByOwner(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "ada@example.com")
	campaignID := createCampaign(t, server, token)

	rr := doJSON(t, server, http.MethodDelete, "/api/campaigns/"+campaignID, token, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	rr = doJSON(t, server, http.MethodGet, "/api/campaigns/"+campaignID, "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}
