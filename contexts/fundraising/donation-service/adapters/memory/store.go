package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	campaignmemory "fundflow/contexts/fundraising/campaign-service/adapters/memory"
	campaignentities "fundflow/contexts/fundraising/campaign-service/domain/entities"
	campaignerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/ports"

	"github.com/google/uuid"
)

// Store keeps the donation ledger in process, backed by the same campaign
// store the campaign context uses so both sides see one balance.
type Store struct {
	mu        sync.RWMutex
	campaigns *campaignmemory.Store
	donations map[string]entities.Donation
	donors    map[string]entities.Donor
	outbox    []outboxRow
	processed map[string]struct{}
}

type outboxRow struct {
	message     ports.OutboxMessage
	publishedAt *time.Time
}

func NewStore(campaigns *campaignmemory.Store) *Store {
	return &Store{
		campaigns: campaigns,
		donations: make(map[string]entities.Donation),
		donors:    make(map[string]entities.Donor),
		processed: make(map[string]struct{}),
	}
}

func (s *Store) SeedDonor(donor entities.Donor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donors[donor.UserID] = donor
}

// RecordDonation takes the store lock for the whole unit so the insert, the
// balance increment, and the outbox append land together or not at all.
func (s *Store) RecordDonation(
	_ context.Context,
	donation entities.Donation,
	envelope ports.EventEnvelope,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.donations[donation.DonationID]; exists {
		return nil
	}

	_, active, err := s.campaigns.IncrementIfActive(donation.CampaignID, donation.Amount, donation.CreatedAt)
	if err != nil {
		if err == campaignerrors.ErrCampaignNotFound {
			return domainerrors.ErrCampaignNotFound
		}
		return err
	}
	if !active {
		return domainerrors.ErrCampaignNotActive
	}

	s.donations[donation.DonationID] = donation
	s.outbox = append(s.outbox, outboxRow{
		message: ports.OutboxMessage{
			OutboxID:     envelope.EventID,
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      marshalEnvelope(envelope),
			CreatedAt:    envelope.OccurredAt.UTC(),
		},
	})
	return nil
}

func (s *Store) GetDonationDetail(ctx context.Context, donationID string) (entities.DonationDetail, error) {
	s.mu.RLock()
	donation, exists := s.donations[strings.TrimSpace(donationID)]
	s.mu.RUnlock()
	if !exists {
		return entities.DonationDetail{}, domainerrors.ErrDonationNotFound
	}

	detail := entities.DonationDetail{Donation: donation}
	detail.Campaign = s.campaignSummary(ctx, donation.CampaignID)
	detail.Donor = s.donor(donation.DonorID)
	return detail, nil
}

func (s *Store) ListDonationsByDonor(
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

	s.mu.RLock()
	matches := make([]entities.Donation, 0, len(s.donations))
	for _, donation := range s.donations {
		if donation.DonorID == donorID {
			matches = append(matches, donation)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := int64(len(matches))
	start := (page - 1) * perPage
	if start > len(matches) {
		start = len(matches)
	}
	end := start + perPage
	if end > len(matches) {
		end = len(matches)
	}

	items := make([]entities.DonationDetail, 0, end-start)
	for _, donation := range matches[start:end] {
		detail := entities.DonationDetail{Donation: donation}
		detail.Campaign = s.campaignSummary(ctx, donation.CampaignID)
		items = append(items, detail)
	}
	return ports.DonationPage{
		Items:       items,
		TotalCount:  total,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.publishedAt != nil {
			continue
		}
		pending = append(pending, row.message)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := publishedAt.UTC()
	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].publishedAt = &stamp
		}
	}
	return nil
}

func (s *Store) ReserveEvent(_ context.Context, eventID string, _ string, _ time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.processed[eventID]; exists {
		return true, nil
	}
	s.processed[eventID] = struct{}{}
	return false, nil
}

func (s *Store) campaignSummary(ctx context.Context, campaignID string) *entities.CampaignSummary {
	campaign, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil
	}
	return &entities.CampaignSummary{CampaignID: campaign.CampaignID, Title: campaign.Title}
}

func (s *Store) donor(userID string) *entities.Donor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donor, exists := s.donors[userID]
	if !exists {
		return nil
	}
	return &donor
}

// SeedCampaign places a campaign row in the shared in-memory schema.
func (s *Store) SeedCampaign(ctx context.Context, campaign campaignentities.Campaign) error {
	return s.campaigns.CreateCampaign(ctx, campaign)
}

func marshalEnvelope(envelope ports.EventEnvelope) []byte {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil
	}
	return payload
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
