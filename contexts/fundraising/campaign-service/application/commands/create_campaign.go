package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "fundflow/contexts/fundraising/campaign-service/application"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	"fundflow/contexts/fundraising/campaign-service/ports"
	"fundflow/internal/shared/validation"
)

type CreateCampaignCommand struct {
	OwnerID     string
	Title       string
	Description string
	GoalAmount  float64
	GoalPresent bool
	StartDate   *time.Time
	EndDate     *time.Time
}

type CreateCampaignUseCase struct {
	Campaigns   ports.CampaignRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	if err := validateCampaignFields(cmd, now); err != nil {
		return entities.Campaign{}, err
	}

	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}

	// Current amount always starts at zero; only the donation workflow moves it.
	campaign := entities.Campaign{
		CampaignID:    campaignID,
		OwnerID:       strings.TrimSpace(cmd.OwnerID),
		Title:         strings.TrimSpace(cmd.Title),
		Description:   strings.TrimSpace(cmd.Description),
		GoalAmount:    cmd.GoalAmount,
		CurrentAmount: 0,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
		Status:        entities.CampaignStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "fundraising/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"owner_id", campaign.OwnerID,
	)
	return campaign, nil
}

func validateCampaignFields(cmd CreateCampaignCommand, now time.Time) error {
	v := validation.NewError()
	if strings.TrimSpace(cmd.Title) == "" {
		v.Add("title", "The title field is required.")
	} else if !entities.ValidTitle(cmd.Title) {
		v.Add("title", "The title must not be greater than 255 characters.")
	}
	if !entities.ValidDescription(cmd.Description) {
		v.Add("description", "The description field is required.")
	}
	if !cmd.GoalPresent {
		v.Add("goal_amount", "The goal amount field is required.")
	} else if !entities.ValidGoalAmount(cmd.GoalAmount) {
		v.Add("goal_amount", "The goal amount must be at least 1.")
	}
	if !entities.StartNotBefore(cmd.StartDate, now) {
		v.Add("start_date", "The start date must be a date after or equal to today.")
	}
	if !entities.DatesOrdered(cmd.StartDate, cmd.EndDate) {
		v.Add("end_date", "The end date must be a date after or equal to start date.")
	}
	return v.Err()
}
