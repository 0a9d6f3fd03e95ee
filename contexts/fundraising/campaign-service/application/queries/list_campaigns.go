package queries

import (
	"context"
	"log/slog"

	application "fundflow/contexts/fundraising/campaign-service/application"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	"fundflow/contexts/fundraising/campaign-service/ports"
)

const listPageSize = 10

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Owners    ports.OwnerDirectory
	Logger    *slog.Logger
}

type CampaignListPage struct {
	Items       []CampaignWithOwner
	TotalCount  int64
	CurrentPage int
	PerPage     int
}

func (uc ListCampaignsUseCase) Execute(ctx context.Context, page int) (CampaignListPage, error) {
	logger := application.ResolveLogger(uc.Logger)
	if page < 1 {
		page = 1
	}

	result, err := uc.Campaigns.ListCampaigns(ctx, page, listPageSize)
	if err != nil {
		return CampaignListPage{}, err
	}

	items := make([]CampaignWithOwner, 0, len(result.Items))
	for _, campaign := range result.Items {
		owner, err := uc.Owners.GetOwner(ctx, campaign.OwnerID)
		if err != nil {
			owner = entities.Owner{UserID: campaign.OwnerID}
		}
		items = append(items, CampaignWithOwner{Campaign: campaign, Owner: owner})
	}

	logger.Info("campaigns listed",
		"event", "campaigns_listed",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"page", result.CurrentPage,
		"count", len(items),
	)
	return CampaignListPage{
		Items:       items,
		TotalCount:  result.TotalCount,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
	}, nil
}
