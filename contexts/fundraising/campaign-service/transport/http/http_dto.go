package http

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Number accepts both JSON numbers and numeric strings, the way form-driven
// clients submit amounts ("50.00"). Malformed input is recorded rather than
// failing the whole body decode, so it can surface as a field error.
type Number struct {
	Value   float64
	Present bool
	Valid   bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	n.Present = true
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil
		}
		n.Value = value
		n.Valid = true
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	n.Value = value
	n.Valid = true
	return nil
}

// Date accepts "2006-01-02" or RFC 3339 timestamps, and an explicit null.
type Date struct {
	Value   *time.Time
	Present bool
	Valid   bool
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	d.Present = true
	if raw == "null" {
		d.Valid = true
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, strings.TrimSpace(text)); err == nil {
			utc := parsed.UTC()
			d.Value = &utc
			d.Valid = true
			return nil
		}
	}
	return nil
}

type CreateCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GoalAmount  Number `json:"goal_amount"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

type UpdateCampaignRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	GoalAmount  *Number `json:"goal_amount"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Status      *string `json:"status"`
}

type OwnerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CampaignDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GoalAmount    string    `json:"goal_amount"`
	CurrentAmount string    `json:"current_amount"`
	StartDate     *string   `json:"start_date"`
	EndDate       *string   `json:"end_date"`
	Status        string    `json:"status"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
	User          *OwnerDTO `json:"user,omitempty"`
}

type CampaignResponse struct {
	Data CampaignDTO `json:"data"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type ListCampaignsResponse struct {
	Data []CampaignDTO `json:"data"`
	Meta PageMeta      `json:"meta"`
}
