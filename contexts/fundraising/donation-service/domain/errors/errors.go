package errors

import "errors"

var (
	ErrDonationNotFound  = errors.New("donation not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCampaignNotActive = errors.New("campaign is not active")
	ErrForbidden         = errors.New("caller does not own this donation")
	ErrNotImplemented    = errors.New("not implemented")
)
