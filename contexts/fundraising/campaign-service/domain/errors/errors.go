package errors

import "errors"

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidCampaignInput = errors.New("invalid campaign input")
	ErrForbidden            = errors.New("caller does not own this campaign")
	ErrOwnerNotFound        = errors.New("campaign owner not found")
)
