package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundflow/contexts/fundraising/campaign-service/adapters/memory"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "fundflow/contexts/fundraising/campaign-service/domain/errors"
)

func seedCampaign(t *testing.T, store *memory.Store, ownerID string) entities.Campaign {
	t.Helper()
	now := time.Now().UTC()
	campaign := entities.Campaign{
		CampaignID:    "camp-1",
		OwnerID:       ownerID,
		Title:         "School Library",
		Description:   "Books and shelving.",
		GoalAmount:    2000,
		CurrentAmount: 150,
		Status:        entities.CampaignStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.CreateCampaign(context.Background(), campaign); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return campaign
}

func newUpdateUseCase(store *memory.Store) UpdateCampaignUseCase {
	return UpdateCampaignUseCase{
		Campaigns: store,
		Clock:     store,
	}
}

func TestUpdateCampaignByOwner(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	title := "School Library and Lab"
	updated, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-1",
		Title:      &title,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("unexpected title %q", updated.Title)
	}
	if updated.Description != "Books and shelving." {
		t.Fatal("absent fields must stay untouched")
	}
}

func TestUpdateCampaignByNonOwnerForbidden(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	title := "Hijacked"
	_, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-2",
		Title:      &title,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateCampaignUnknownStatusRejected(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	status := "archived"
	_, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-1",
		Status:     &status,
	})
	if msgs := fieldMessages(t, err, "status"); len(msgs) == 0 || msgs[0] != "The selected status is invalid." {
		t.Fatalf("unexpected status messages %v", msgs)
	}
}

func TestUpdateCampaignExplicitNullClearsEndDate(t *testing.T) {
	store := memory.NewStore(nil)
	campaign := seedCampaign(t, store, "user-1")
	end := time.Now().UTC().AddDate(0, 1, 0)
	campaign.EndDate = &end
	if err := store.UpdateCampaign(context.Background(), campaign); err != nil {
		t.Fatalf("seed end date failed: %v", err)
	}

	updated, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-1",
		EndDateSet: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.EndDate != nil {
		t.Fatal("explicit null should clear end date")
	}
}

func TestUpdateCampaignPreservesBalance(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	goal := 3000.0
	updated, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-1",
		GoalAmount: &goal,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CurrentAmount != 150 {
		t.Fatalf("balance must survive updates, got %f", updated.CurrentAmount)
	}
}

func TestUpdateCampaignNotFound(t *testing.T) {
	store := memory.NewStore(nil)
	title := "Anything"
	_, err := newUpdateUseCase(store).Execute(context.Background(), UpdateCampaignCommand{
		CampaignID: "missing",
		ActorID:    "user-1",
		Title:      &title,
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCampaignByNonOwnerForbidden(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	err := DeleteCampaignUseCase{Campaigns: store}.Execute(context.Background(), DeleteCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-2",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDeleteCampaignByOwner(t *testing.T) {
	store := memory.NewStore(nil)
	seedCampaign(t, store, "user-1")

	err := DeleteCampaignUseCase{Campaigns: store}.Execute(context.Background(), DeleteCampaignCommand{
		CampaignID: "camp-1",
		ActorID:    "user-1",
	})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetCampaign(context.Background(), "camp-1"); !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected campaign gone, got %v", err)
	}
}
