package queries

import (
	"context"
	"log/slog"
	"strings"

	application "fundflow/contexts/fundraising/donation-service/application"
	"fundflow/contexts/fundraising/donation-service/ports"
)

const listPageSize = 10

// ListDonationsUseCase returns the caller's own donations, newest first.
type ListDonationsUseCase struct {
	Ledger ports.DonationLedger
	Logger *slog.Logger
}

func (uc ListDonationsUseCase) Execute(ctx context.Context, donorID string, page int) (ports.DonationPage, error) {
	logger := application.ResolveLogger(uc.Logger)
	if page < 1 {
		page = 1
	}

	result, err := uc.Ledger.ListDonationsByDonor(ctx, strings.TrimSpace(donorID), page, listPageSize)
	if err != nil {
		return ports.DonationPage{}, err
	}

	logger.Info("donations listed",
		"event", "donations_listed",
		"module", "fundraising/donation-service",
		"layer", "application",
		"donor_id", donorID,
		"page", result.CurrentPage,
		"count", len(result.Items),
	)
	return result, nil
}
