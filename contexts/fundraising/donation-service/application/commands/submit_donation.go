package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	application "fundflow/contexts/fundraising/donation-service/application"
	"fundflow/contexts/fundraising/donation-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/ports"
	"fundflow/internal/shared/validation"
)

// DonationReceivedTopic carries confirmation envelopes from the outbox to the
// delivery worker. The payload is the donation id alone; the worker reloads
// everything else.
const DonationReceivedTopic = "donation.received"

type donationReceivedPayload struct {
	DonationID string `json:"donation_id"`
}

type SubmitDonationCommand struct {
	DonorID       string
	CampaignID    string
	Amount        float64
	AmountPresent bool
}

type SubmitDonationUseCase struct {
	Ledger      ports.DonationLedger
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc SubmitDonationUseCase) Execute(ctx context.Context, cmd SubmitDonationCommand) (entities.Donation, error) {
	logger := application.ResolveLogger(uc.Logger)

	v := validation.NewError()
	if strings.TrimSpace(cmd.CampaignID) == "" {
		v.Add("campaign_id", "The campaign id field is required.")
	}
	if !cmd.AmountPresent {
		v.Add("amount", "The amount field is required.")
	} else if !entities.ValidAmount(cmd.Amount) {
		v.Add("amount", "The amount must be at least 1.")
	}
	if err := v.Err(); err != nil {
		return entities.Donation{}, err
	}

	now := uc.Clock.Now().UTC()
	donationID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Donation{}, err
	}
	eventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Donation{}, err
	}

	donation := entities.Donation{
		DonationID: donationID,
		DonorID:    strings.TrimSpace(cmd.DonorID),
		CampaignID: strings.TrimSpace(cmd.CampaignID),
		Amount:     cmd.Amount,
		Status:     entities.DonationStatusSucceeded,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	payload, err := json.Marshal(donationReceivedPayload{DonationID: donationID})
	if err != nil {
		return entities.Donation{}, err
	}
	envelope := ports.EventEnvelope{
		EventID:       eventID,
		EventType:     DonationReceivedTopic,
		OccurredAt:    now,
		SourceService: "donation-service",
		SchemaVersion: 1,
		PartitionKey:  donation.CampaignID,
		Data:          payload,
	}

	if err := uc.Ledger.RecordDonation(ctx, donation, envelope); err != nil {
		// A missing campaign surfaces as a field error, matching the API
		// contract that treats campaign_id as request input rather than a
		// resource path.
		if errors.Is(err, domainerrors.ErrCampaignNotFound) {
			return entities.Donation{}, validation.NewError().
				Add("campaign_id", "The selected campaign id is invalid.").
				Err()
		}
		return entities.Donation{}, err
	}

	logger.Info("donation accepted",
		"event", "donation_accepted",
		"module", "fundraising/donation-service",
		"layer", "application",
		"donation_id", donation.DonationID,
		"campaign_id", donation.CampaignID,
		"donor_id", donation.DonorID,
		"amount", donation.Amount,
	)
	return donation, nil
}
