package queries

import (
	"context"
	"log/slog"
	"strings"

	"fundflow/contexts/fundraising/donation-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/ports"
	"fundflow/internal/shared/authz"
)

type GetDonationUseCase struct {
	Ledger ports.DonationLedger
	Logger *slog.Logger
}

func (uc GetDonationUseCase) Execute(ctx context.Context, actorID string, donationID string) (entities.DonationDetail, error) {
	detail, err := uc.Ledger.GetDonationDetail(ctx, strings.TrimSpace(donationID))
	if err != nil {
		return entities.DonationDetail{}, err
	}
	if !authz.CanPerform(actorID, authz.ActionView, authz.Donation(detail.Donation.DonorID)) {
		return entities.DonationDetail{}, domainerrors.ErrForbidden
	}
	return detail, nil
}
