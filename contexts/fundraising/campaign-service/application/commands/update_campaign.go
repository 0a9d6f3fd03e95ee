package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "fundflow/contexts/fundraising/campaign-service/application"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	"fundflow/contexts/fundraising/campaign-service/ports"
	"fundflow/internal/shared/authz"
	"fundflow/internal/shared/validation"
)

// UpdateCampaignCommand carries only the fields present in the request; nil
// pointers leave the stored value untouched. StartDateSet/EndDateSet
// distinguish "field absent" from an explicit null that clears the date.
type UpdateCampaignCommand struct {
	CampaignID   string
	ActorID      string
	Title        *string
	Description  *string
	GoalAmount   *float64
	StartDate    *time.Time
	StartDateSet bool
	EndDate      *time.Time
	EndDateSet   bool
	Status       *string
}

type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return entities.Campaign{}, err
	}
	if !authz.CanPerform(cmd.ActorID, authz.ActionUpdate, authz.Campaign(campaign.OwnerID)) {
		return entities.Campaign{}, domainerrors.ErrForbidden
	}

	if err := validateUpdateFields(cmd); err != nil {
		return entities.Campaign{}, err
	}

	if cmd.Title != nil {
		campaign.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		campaign.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.GoalAmount != nil {
		campaign.GoalAmount = *cmd.GoalAmount
	}
	if cmd.StartDateSet {
		campaign.StartDate = cmd.StartDate
	}
	if cmd.EndDateSet {
		campaign.EndDate = cmd.EndDate
	}
	if cmd.Status != nil {
		campaign.Status = entities.CampaignStatus(strings.TrimSpace(*cmd.Status))
	}

	if !entities.DatesOrdered(campaign.StartDate, campaign.EndDate) {
		return entities.Campaign{}, validation.NewError().
			Add("end_date", "The end date must be a date after or equal to start date.").
			Err()
	}

	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign updated",
		"event", "campaign_updated",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"owner_id", campaign.OwnerID,
	)
	return campaign, nil
}

func validateUpdateFields(cmd UpdateCampaignCommand) error {
	v := validation.NewError()
	if cmd.Title != nil {
		if strings.TrimSpace(*cmd.Title) == "" {
			v.Add("title", "The title field is required.")
		} else if !entities.ValidTitle(*cmd.Title) {
			v.Add("title", "The title must not be greater than 255 characters.")
		}
	}
	if cmd.Description != nil && !entities.ValidDescription(*cmd.Description) {
		v.Add("description", "The description field is required.")
	}
	if cmd.GoalAmount != nil && !entities.ValidGoalAmount(*cmd.GoalAmount) {
		v.Add("goal_amount", "The goal amount must be at least 1.")
	}
	if cmd.Status != nil && !entities.IsSupportedStatus(entities.CampaignStatus(strings.TrimSpace(*cmd.Status))) {
		v.Add("status", "The selected status is invalid.")
	}
	return v.Err()
}
