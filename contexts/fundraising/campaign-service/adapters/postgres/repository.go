package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	"fundflow/contexts/fundraising/campaign-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateCampaign(ctx context.Context, campaign entities.Campaign) error {
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", strings.TrimSpace(campaign.CampaignID)).
		Updates(campaignUpdatesFromEntity(campaign))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) DeleteCampaign(ctx context.Context, campaignID string) error {
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Delete(&campaignModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaigns(ctx context.Context, page int, perPage int) (ports.CampaignPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&campaignModel{}).Count(&total).Error; err != nil {
		return ports.CampaignPage{}, err
	}

	var rows []campaignModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).
		Error; err != nil {
		return ports.CampaignPage{}, err
	}

	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return ports.CampaignPage{
		Items:       items,
		TotalCount:  total,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

// GetOwner is a cross-context read of the identity store, limited to the
// columns campaign responses embed.
func (r *Repository) GetOwner(ctx context.Context, userID string) (entities.Owner, error) {
	var row ownerModel
	err := r.db.WithContext(ctx).
		Select("user_id", "name").
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Owner{}, domainerrors.ErrOwnerNotFound
		}
		return entities.Owner{}, err
	}
	return entities.Owner{UserID: row.UserID, Name: row.Name}, nil
}

type ownerModel struct {
	UserID string `gorm:"column:user_id"`
	Name   string `gorm:"column:name"`
}

func (ownerModel) TableName() string {
	return "users"
}

type campaignModel struct {
	CampaignID    string     `gorm:"column:campaign_id;primaryKey"`
	UserID        string     `gorm:"column:user_id"`
	Title         string     `gorm:"column:title"`
	Description   string     `gorm:"column:description"`
	GoalAmount    float64    `gorm:"column:goal_amount"`
	CurrentAmount float64    `gorm:"column:current_amount"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
	Status        string     `gorm:"column:status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:    strings.TrimSpace(item.CampaignID),
		UserID:        strings.TrimSpace(item.OwnerID),
		Title:         strings.TrimSpace(item.Title),
		Description:   strings.TrimSpace(item.Description),
		GoalAmount:    item.GoalAmount,
		CurrentAmount: item.CurrentAmount,
		StartDate:     normalizeOptionalTime(item.StartDate),
		EndDate:       normalizeOptionalTime(item.EndDate),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
	}
}

// campaignUpdatesFromEntity deliberately leaves current_amount out: the
// balance only moves through the donation workflow's increment.
func campaignUpdatesFromEntity(item entities.Campaign) map[string]any {
	row := campaignModelFromEntity(item)
	return map[string]any{
		"title":       row.Title,
		"description": row.Description,
		"goal_amount": row.GoalAmount,
		"start_date":  row.StartDate,
		"end_date":    row.EndDate,
		"status":      row.Status,
		"updated_at":  row.UpdatedAt,
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:    m.CampaignID,
		OwnerID:       m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		GoalAmount:    m.GoalAmount,
		CurrentAmount: m.CurrentAmount,
		StartDate:     normalizeOptionalTime(m.StartDate),
		EndDate:       normalizeOptionalTime(m.EndDate),
		Status:        entities.CampaignStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
