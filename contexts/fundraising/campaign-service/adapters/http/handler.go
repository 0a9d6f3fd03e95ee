package httpadapter

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"fundflow/contexts/fundraising/campaign-service/application/commands"
	"fundflow/contexts/fundraising/campaign-service/application/queries"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	httptransport "fundflow/contexts/fundraising/campaign-service/transport/http"
	"fundflow/internal/shared/validation"
)

type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	UpdateCampaign commands.UpdateCampaignUseCase
	DeleteCampaign commands.DeleteCampaignUseCase
	GetCampaign    queries.GetCampaignUseCase
	ListCampaigns  queries.ListCampaignsUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	v := validation.NewError()
	if req.GoalAmount.Present && !req.GoalAmount.Valid {
		v.Add("goal_amount", "The goal amount must be a number.")
	}
	if req.StartDate.Present && !req.StartDate.Valid {
		v.Add("start_date", "The start date is not a valid date.")
	}
	if req.EndDate.Present && !req.EndDate.Valid {
		v.Add("end_date", "The end date is not a valid date.")
	}
	if err := v.Err(); err != nil {
		return httptransport.CampaignResponse{}, err
	}

	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount.Value,
		GoalPresent: req.GoalAmount.Present && req.GoalAmount.Valid,
		StartDate:   req.StartDate.Value,
		EndDate:     req.EndDate.Value,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Data: mapCampaign(campaign, nil)}, nil
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.UpdateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	v := validation.NewError()
	if req.GoalAmount != nil && req.GoalAmount.Present && !req.GoalAmount.Valid {
		v.Add("goal_amount", "The goal amount must be a number.")
	}
	if req.StartDate != nil && req.StartDate.Present && !req.StartDate.Valid {
		v.Add("start_date", "The start date is not a valid date.")
	}
	if req.EndDate != nil && req.EndDate.Present && !req.EndDate.Valid {
		v.Add("end_date", "The end date is not a valid date.")
	}
	if err := v.Err(); err != nil {
		return httptransport.CampaignResponse{}, err
	}

	cmd := commands.UpdateCampaignCommand{
		CampaignID:  campaignID,
		ActorID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.GoalAmount != nil && req.GoalAmount.Valid {
		amount := req.GoalAmount.Value
		cmd.GoalAmount = &amount
	}
	if req.StartDate != nil {
		cmd.StartDateSet = true
		cmd.StartDate = req.StartDate.Value
	}
	if req.EndDate != nil {
		cmd.EndDateSet = true
		cmd.EndDate = req.EndDate.Value
	}

	campaign, err := h.UpdateCampaign.Execute(ctx, cmd)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Data: mapCampaign(campaign, nil)}, nil
}

func (h Handler) DeleteCampaignHandler(ctx context.Context, userID string, campaignID string) error {
	return h.DeleteCampaign.Execute(ctx, commands.DeleteCampaignCommand{
		CampaignID: campaignID,
		ActorID:    userID,
	})
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	item, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	owner := mapOwner(item.Owner)
	return httptransport.CampaignResponse{Data: mapCampaign(item.Campaign, &owner)}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, page int) (httptransport.ListCampaignsResponse, error) {
	result, err := h.ListCampaigns.Execute(ctx, page)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}

	items := make([]httptransport.CampaignDTO, 0, len(result.Items))
	for _, item := range result.Items {
		owner := mapOwner(item.Owner)
		items = append(items, mapCampaign(item.Campaign, &owner))
	}

	lastPage := int(math.Ceil(float64(result.TotalCount) / float64(result.PerPage)))
	if lastPage < 1 {
		lastPage = 1
	}
	return httptransport.ListCampaignsResponse{
		Data: items,
		Meta: httptransport.PageMeta{
			CurrentPage: result.CurrentPage,
			PerPage:     result.PerPage,
			Total:       result.TotalCount,
			LastPage:    lastPage,
		},
	}, nil
}

func mapOwner(owner entities.Owner) httptransport.OwnerDTO {
	return httptransport.OwnerDTO{ID: owner.UserID, Name: owner.Name}
}

func mapCampaign(item entities.Campaign, owner *httptransport.OwnerDTO) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		ID:            item.CampaignID,
		UserID:        item.OwnerID,
		Title:         item.Title,
		Description:   item.Description,
		GoalAmount:    formatAmount(item.GoalAmount),
		CurrentAmount: formatAmount(item.CurrentAmount),
		StartDate:     formatDate(item.StartDate),
		EndDate:       formatDate(item.EndDate),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
		User:          owner,
	}
}

// Amounts serialize as two-decimal strings to keep the money contract stable
// for clients that compare them textually.
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	text := value.UTC().Format("2006-01-02")
	return &text
}
