package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
	"fundflow/contexts/fundraising/campaign-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	campaigns map[string]entities.Campaign
	owners    map[string]entities.Owner
}

func NewStore(seed []entities.Campaign) *Store {
	campaigns := make(map[string]entities.Campaign, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = item
	}
	return &Store{
		campaigns: campaigns,
		owners:    make(map[string]entities.Owner),
	}
}

func (s *Store) SeedOwner(owner entities.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[owner.UserID] = owner
}

func (s *Store) GetOwner(_ context.Context, userID string) (entities.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, exists := s.owners[strings.TrimSpace(userID)]
	if !exists {
		return entities.Owner{}, domainerrors.ErrOwnerNotFound
	}
	return owner, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.campaigns[campaign.CampaignID]
	if !exists {
		return domainerrors.ErrCampaignNotFound
	}
	// The balance belongs to the donation workflow; a full-row update must
	// never overwrite it from a stale read.
	campaign.CurrentAmount = existing.CurrentAmount
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) DeleteCampaign(_ context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	delete(s.campaigns, campaignID)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) ListCampaigns(_ context.Context, page int, perPage int) (ports.CampaignPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	total := int64(len(items))
	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return ports.CampaignPage{
		Items:       append([]entities.Campaign(nil), items[start:end]...),
		TotalCount:  total,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

// IncrementIfActive mirrors the storage-level atomic increment for in-memory
// wiring: status check and balance movement happen under one lock. The bool
// reports whether the campaign was active; an inactive campaign is returned
// unchanged.
func (s *Store) IncrementIfActive(campaignID string, amount float64, now time.Time) (entities.Campaign, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, false, domainerrors.ErrCampaignNotFound
	}
	if campaign.Status != entities.CampaignStatusActive {
		return campaign, false, nil
	}
	campaign.CurrentAmount += amount
	campaign.UpdatedAt = now
	s.campaigns[campaignID] = campaign
	return campaign, true, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
