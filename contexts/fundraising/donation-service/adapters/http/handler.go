package httpadapter

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"fundflow/contexts/fundraising/donation-service/application/commands"
	"fundflow/contexts/fundraising/donation-service/application/queries"
	"fundflow/contexts/fundraising/donation-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	httptransport "fundflow/contexts/fundraising/donation-service/transport/http"
	"fundflow/internal/shared/validation"
)

type Handler struct {
	SubmitDonation commands.SubmitDonationUseCase
	GetDonation    queries.GetDonationUseCase
	ListDonations  queries.ListDonationsUseCase
	Logger         *slog.Logger
}

func (h Handler) SubmitDonationHandler(
	ctx context.Context,
	userID string,
	req httptransport.SubmitDonationRequest,
) (httptransport.DonationResponse, error) {
	if req.Amount.Present && !req.Amount.Valid {
		return httptransport.DonationResponse{}, validation.NewError().
			Add("amount", "The amount must be a number.").
			Err()
	}

	donation, err := h.SubmitDonation.Execute(ctx, commands.SubmitDonationCommand{
		DonorID:       userID,
		CampaignID:    req.CampaignID.Value,
		Amount:        req.Amount.Value,
		AmountPresent: req.Amount.Present && req.Amount.Valid,
	})
	if err != nil {
		return httptransport.DonationResponse{}, err
	}
	return httptransport.DonationResponse{Data: mapDonation(donation, nil, nil)}, nil
}

func (h Handler) GetDonationHandler(
	ctx context.Context,
	userID string,
	donationID string,
) (httptransport.DonationResponse, error) {
	detail, err := h.GetDonation.Execute(ctx, userID, donationID)
	if err != nil {
		return httptransport.DonationResponse{}, err
	}
	return httptransport.DonationResponse{Data: mapDetail(detail)}, nil
}

func (h Handler) ListDonationsHandler(
	ctx context.Context,
	userID string,
	page int,
) (httptransport.ListDonationsResponse, error) {
	result, err := h.ListDonations.Execute(ctx, userID, page)
	if err != nil {
		return httptransport.ListDonationsResponse{}, err
	}

	items := make([]httptransport.DonationDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapDetail(item))
	}

	lastPage := int(math.Ceil(float64(result.TotalCount) / float64(result.PerPage)))
	if lastPage < 1 {
		lastPage = 1
	}
	return httptransport.ListDonationsResponse{
		Data: items,
		Meta: httptransport.PageMeta{
			CurrentPage: result.CurrentPage,
			PerPage:     result.PerPage,
			Total:       result.TotalCount,
			LastPage:    lastPage,
		},
	}, nil
}

// UpdateDonationHandler reserves the route while amendment rules are still
// undecided.
func (h Handler) UpdateDonationHandler(ctx context.Context, userID string, donationID string) error {
	return domainerrors.ErrNotImplemented
}

// DeleteDonationHandler acknowledges without deleting; the ledger keeps every
// accepted donation.
func (h Handler) DeleteDonationHandler(ctx context.Context, userID string, donationID string) error {
	return nil
}

func mapDetail(detail entities.DonationDetail) httptransport.DonationDTO {
	var campaign *httptransport.CampaignRefDTO
	if detail.Campaign != nil {
		campaign = &httptransport.CampaignRefDTO{
			ID:    detail.Campaign.CampaignID,
			Title: detail.Campaign.Title,
		}
	}
	var donor *httptransport.DonorDTO
	if detail.Donor != nil {
		donor = &httptransport.DonorDTO{ID: detail.Donor.UserID, Name: detail.Donor.Name}
	}
	return mapDonation(detail.Donation, campaign, donor)
}

func mapDonation(
	item entities.Donation,
	campaign *httptransport.CampaignRefDTO,
	donor *httptransport.DonorDTO,
) httptransport.DonationDTO {
	return httptransport.DonationDTO{
		ID:         item.DonationID,
		UserID:     item.DonorID,
		CampaignID: item.CampaignID,
		Amount:     formatAmount(item.Amount),
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  item.UpdatedAt.UTC().Format(time.RFC3339),
		Campaign:   campaign,
		User:       donor,
	}
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
