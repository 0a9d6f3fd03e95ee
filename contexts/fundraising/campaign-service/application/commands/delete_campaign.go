package commands

import (
	"context"
	"log/slog"

	application "fundflow/contexts/fundraising/campaign-service/application"
	domainerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	"fundflow/contexts/fundraising/campaign-service/ports"
	"fundflow/internal/shared/authz"
)

type DeleteCampaignCommand struct {
	CampaignID string
	ActorID    string
}

type DeleteCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc DeleteCampaignUseCase) Execute(ctx context.Context, cmd DeleteCampaignCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return err
	}
	if !authz.CanPerform(cmd.ActorID, authz.ActionDelete, authz.Campaign(campaign.OwnerID)) {
		return domainerrors.ErrForbidden
	}
	if err := uc.Campaigns.DeleteCampaign(ctx, campaign.CampaignID); err != nil {
		return err
	}

	logger.Info("campaign deleted",
		"event", "campaign_deleted",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"owner_id", campaign.OwnerID,
	)
	return nil
}
