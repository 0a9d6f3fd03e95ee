package entities

import "time"

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusSucceeded DonationStatus = "succeeded"
	DonationStatusFailed    DonationStatus = "failed"
)

type Donation struct {
	DonationID      string
	DonorID         string
	CampaignID      string
	Amount          float64
	Status          DonationStatus
	PaymentIntentID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CampaignSummary is the slice of a campaign embedded in donation reads.
type CampaignSummary struct {
	CampaignID string
	Title      string
}

// Donor is the slice of a user embedded in donation reads.
type Donor struct {
	UserID string
	Name   string
}

// DonationDetail carries a donation with its resolvable relations. Either
// pointer is nil when the referenced row no longer exists.
type DonationDetail struct {
	Donation Donation
	Campaign *CampaignSummary
	Donor    *Donor
}

// MinimumAmount is the smallest accepted donation.
const MinimumAmount = 1.0

func ValidAmount(amount float64) bool {
	return amount >= MinimumAmount
}
