package http

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID accepts both JSON strings and bare numbers for identifier fields, so
// clients that still send integer ids keep working against string keys.
type ID struct {
	Value   string
	Present bool
}

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	id.Present = true
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		id.Value = strings.TrimSpace(text)
		return nil
	}
	id.Value = raw
	return nil
}

// Amount accepts both JSON numbers and numeric strings. Malformed input is
// recorded rather than failing the whole body decode, so it can surface as a
// field error.
type Amount struct {
	Value   float64
	Present bool
	Valid   bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	a.Present = true
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil
		}
		a.Value = value
		a.Valid = true
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	a.Value = value
	a.Valid = true
	return nil
}

type SubmitDonationRequest struct {
	CampaignID ID     `json:"campaign_id"`
	Amount     Amount `json:"amount"`
}

type CampaignRefDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type DonorDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DonationDTO struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CampaignID string          `json:"campaign_id"`
	Amount     string          `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
	Campaign   *CampaignRefDTO `json:"campaign,omitempty"`
	User       *DonorDTO       `json:"user,omitempty"`
}

type DonationResponse struct {
	Data DonationDTO `json:"data"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type ListDonationsResponse struct {
	Data []DonationDTO `json:"data"`
	Meta PageMeta      `json:"meta"`
}
