package ports

import (
	"context"
	"time"

	"fundflow/contexts/fundraising/campaign-service/domain/entities"
)

// CampaignPage is one page of the newest-first listing.
type CampaignPage struct {
	Items       []entities.Campaign
	TotalCount  int64
	CurrentPage int
	PerPage     int
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, page int, perPage int) (CampaignPage, error)
}

// OwnerDirectory resolves owner display data from the identity context.
type OwnerDirectory interface {
	GetOwner(ctx context.Context, userID string) (entities.Owner, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
