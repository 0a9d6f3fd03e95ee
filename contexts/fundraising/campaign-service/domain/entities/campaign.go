package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusInactive  CampaignStatus = "inactive"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

const MaxTitleLength = 255

type Campaign struct {
	CampaignID    string
	OwnerID       string
	Title         string
	Description   string
	GoalAmount    float64
	CurrentAmount float64
	StartDate     *time.Time
	EndDate       *time.Time
	Status        CampaignStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Owner is the projection of a user embedded in campaign reads.
type Owner struct {
	UserID string
	Name   string
}

func IsSupportedStatus(value CampaignStatus) bool {
	switch value {
	case CampaignStatusActive, CampaignStatusInactive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	default:
		return false
	}
}

func ValidTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	return trimmed != "" && len(trimmed) <= MaxTitleLength
}

func ValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

func ValidGoalAmount(amount float64) bool {
	return amount >= 1
}

// DatesOrdered holds when either date is absent; the window only has to be
// well-formed once both ends are known.
func DatesOrdered(start *time.Time, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !end.UTC().Before(start.UTC())
}

func StartNotBefore(start *time.Time, today time.Time) bool {
	if start == nil {
		return true
	}
	day := today.UTC().Truncate(24 * time.Hour)
	return !start.UTC().Before(day)
}
