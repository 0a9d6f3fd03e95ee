package queries

import (
	"context"
	"log/slog"
	"strings"

	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	"fundflow/contexts/fundraising/campaign-service/ports"
)

type CampaignWithOwner struct {
	Campaign entities.Campaign
	Owner    entities.Owner
}

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Owners    ports.OwnerDirectory
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (CampaignWithOwner, error) {
	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return CampaignWithOwner{}, err
	}
	owner, err := uc.Owners.GetOwner(ctx, campaign.OwnerID)
	if err != nil {
		// A dangling owner reference must not hide the campaign itself.
		owner = entities.Owner{UserID: campaign.OwnerID}
	}
	return CampaignWithOwner{Campaign: campaign, Owner: owner}, nil
}
