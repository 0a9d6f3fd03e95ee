package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fundflow/contexts/fundraising/donation-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// RecordDonation commits the whole workflow in one transaction. The campaign
// row is locked FOR UPDATE before the status check so a concurrent deactivate
// cannot race past the eligibility gate, and the balance moves with a SQL
// increment rather than a read-modify-write.
func (r *Repository) RecordDonation(
	ctx context.Context,
	donation entities.Donation,
	envelope ports.EventEnvelope,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaign campaignRowModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("campaign_id", "status").
			Where("campaign_id = ?", strings.TrimSpace(donation.CampaignID)).
			First(&campaign).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		if campaign.Status != "active" {
			return domainerrors.ErrCampaignNotActive
		}

		row := donationModelFromEntity(donation)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDonationNotFound
			}
			return err
		}

		increment := tx.
			Model(&campaignRowModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(map[string]any{
				"current_amount": gorm.Expr("current_amount + ?", donation.Amount),
				"updated_at":     donation.CreatedAt.UTC(),
			})
		if increment.Error != nil {
			return increment.Error
		}
		if increment.RowsAffected == 0 {
			return domainerrors.ErrCampaignNotFound
		}

		outbox, err := outboxModelFromEnvelope(envelope)
		if err != nil {
			return err
		}
		return tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&outbox).
			Error
	})
}

func (r *Repository) GetDonationDetail(ctx context.Context, donationID string) (entities.DonationDetail, error) {
	var row donationModel
	err := r.db.WithContext(ctx).
		Where("donation_id = ?", strings.TrimSpace(donationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DonationDetail{}, domainerrors.ErrDonationNotFound
		}
		return entities.DonationDetail{}, err
	}
	detail := entities.DonationDetail{Donation: row.toEntity()}
	detail.Campaign = r.loadCampaignSummary(ctx, row.CampaignID)
	detail.Donor = r.loadDonor(ctx, row.UserID)
	return detail, nil
}

func (r *Repository) ListDonationsByDonor(
	ctx context.Context,
	donorID string,
	page int,
	perPage int,
) (ports.DonationPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	donorID = strings.TrimSpace(donorID)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&donationModel{}).
		Where("user_id = ?", donorID).
		Count(&total).
		Error; err != nil {
		return ports.DonationPage{}, err
	}

	var rows []donationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", donorID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).
		Error; err != nil {
		return ports.DonationPage{}, err
	}

	items := make([]entities.DonationDetail, 0, len(rows))
	for _, row := range rows {
		detail := entities.DonationDetail{Donation: row.toEntity()}
		detail.Campaign = r.loadCampaignSummary(ctx, row.CampaignID)
		items = append(items, detail)
	}
	return ports.DonationPage{
		Items:       items,
		TotalCount:  total,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      []byte(row.Payload),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	stamp := publishedAt.UTC()
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Update("published_at", &stamp).
		Error
}

// ReserveEvent reports true when the event id was already claimed by a prior
// delivery attempt.
func (r *Repository) ReserveEvent(
	ctx context.Context,
	eventID string,
	payloadHash string,
	expiresAt time.Time,
) (bool, error) {
	row := processedEventModel{
		EventID:     strings.TrimSpace(eventID),
		PayloadHash: payloadHash,
		ProcessedAt: time.Now().UTC(),
		ExpiresAt:   expiresAt.UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 0, nil
}

// loadCampaignSummary tolerates a vanished campaign; the detail simply omits
// the reference.
func (r *Repository) loadCampaignSummary(ctx context.Context, campaignID string) *entities.CampaignSummary {
	var row campaignRowModel
	err := r.db.WithContext(ctx).
		Select("campaign_id", "title").
		Where("campaign_id = ?", campaignID).
		First(&row).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("campaign lookup failed",
				"event", "donation_campaign_lookup_failed",
				"module", "fundraising/donation-service",
				"layer", "adapter",
				"campaign_id", campaignID,
				"error", err.Error(),
			)
		}
		return nil
	}
	return &entities.CampaignSummary{CampaignID: row.CampaignID, Title: row.Title}
}

func (r *Repository) loadDonor(ctx context.Context, userID string) *entities.Donor {
	var row donorModel
	err := r.db.WithContext(ctx).
		Select("user_id", "name").
		Where("user_id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("donor lookup failed",
				"event", "donation_donor_lookup_failed",
				"module", "fundraising/donation-service",
				"layer", "adapter",
				"user_id", userID,
				"error", err.Error(),
			)
		}
		return nil
	}
	return &entities.Donor{UserID: row.UserID, Name: row.Name}
}

type donationModel struct {
	DonationID string    `gorm:"column:donation_id;primaryKey"`
	UserID     string    `gorm:"column:user_id"`
	CampaignID string    `gorm:"column:campaign_id"`
	Amount     float64   `gorm:"column:amount"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (donationModel) TableName() string {
	return "donations"
}

func donationModelFromEntity(item entities.Donation) donationModel {
	return donationModel{
		DonationID: strings.TrimSpace(item.DonationID),
		UserID:     strings.TrimSpace(item.DonorID),
		CampaignID: strings.TrimSpace(item.CampaignID),
		Amount:     item.Amount,
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt.UTC(),
		UpdatedAt:  item.UpdatedAt.UTC(),
	}
}

func (m donationModel) toEntity() entities.Donation {
	return entities.Donation{
		DonationID: m.DonationID,
		DonorID:    m.UserID,
		CampaignID: m.CampaignID,
		Amount:     m.Amount,
		Status:     entities.DonationStatus(m.Status),
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

type campaignRowModel struct {
	CampaignID string `gorm:"column:campaign_id;primaryKey"`
	Title      string `gorm:"column:title"`
	Status     string `gorm:"column:status"`
}

func (campaignRowModel) TableName() string {
	return "campaigns"
}

type donorModel struct {
	UserID string `gorm:"column:user_id"`
	Name   string `gorm:"column:name"`
}

func (donorModel) TableName() string {
	return "users"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      string     `gorm:"column:payload"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "donation_outbox"
}

// The outbox payload column stores the full envelope, so the relay republishes
// exactly what the workflow enqueued.
func outboxModelFromEnvelope(envelope ports.EventEnvelope) (outboxModel, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return outboxModel{}, err
	}
	return outboxModel{
		OutboxID:     envelope.EventID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      string(payload),
		CreatedAt:    envelope.OccurredAt.UTC(),
	}, nil
}

type processedEventModel struct {
	EventID     string    `gorm:"column:event_id;primaryKey"`
	PayloadHash string    `gorm:"column:payload_hash"`
	ProcessedAt time.Time `gorm:"column:processed_at"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (processedEventModel) TableName() string {
	return "donation_processed_events"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
