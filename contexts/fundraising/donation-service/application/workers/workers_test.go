package workers

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	campaignmemory "fundflow/contexts/fundraising/campaign-service/adapters/memory"
	campaignentities "fundflow/contexts/fundraising/campaign-service/domain/entities"
	"fundflow/contexts/fundraising/donation-service/adapters/memory"
	"fundflow/contexts/fundraising/donation-service/domain/entities"
	"fundflow/contexts/fundraising/donation-service/ports"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []ports.EventEnvelope
}

func (p *capturePublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type stubSubscriber struct {
	handler func(context.Context, ports.EventEnvelope) error
}

func (s *stubSubscriber) Subscribe(
	_ context.Context,
	_ string,
	_ string,
	handler func(context.Context, ports.EventEnvelope) error,
) error {
	s.handler = handler
	return nil
}

type captureMailer struct {
	mu    sync.Mutex
	mails []ports.Mail
}

func (m *captureMailer) Send(_ context.Context, mail ports.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mails = append(m.mails, mail)
	return nil
}

func newWorkerFixture(t *testing.T) (*memory.Store, *campaignmemory.Store) {
	t.Helper()
	campaigns := campaignmemory.NewStore(nil)
	now := time.Now().UTC()
	err := campaigns.CreateCampaign(context.Background(), campaignentities.Campaign{
		CampaignID:  "camp-1",
		OwnerID:     "owner-1",
		Title:       "River Cleanup",
		Description: "Gloves and boats.",
		GoalAmount:  1000,
		Status:      campaignentities.CampaignStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("seed campaign failed: %v", err)
	}
	return memory.NewStore(campaigns), campaigns
}

func recordTestDonation(t *testing.T, store *memory.Store, donationID string) ports.EventEnvelope {
	t.Helper()
	now := time.Now().UTC()
	payload, _ := json.Marshal(map[string]string{"donation_id": donationID})
	envelope := ports.EventEnvelope{
		EventID:       "evt-" + donationID,
		EventType:     "donation.received",
		OccurredAt:    now,
		SourceService: "donation-service",
		SchemaVersion: 1,
		PartitionKey:  "camp-1",
		Data:          payload,
	}
	err := store.RecordDonation(context.Background(), entities.Donation{
		DonationID: donationID,
		DonorID:    "donor-1",
		CampaignID: "camp-1",
		Amount:     10,
		Status:     entities.DonationStatusSucceeded,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, envelope)
	if err != nil {
		t.Fatalf("record donation failed: %v", err)
	}
	return envelope
}

func TestOutboxRelayPublishesOnce(t *testing.T) {
	store, _ := newWorkerFixture(t)
	recordTestDonation(t, store, "don-1")

	publisher := &capturePublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected one publish, got %d", len(publisher.events))
	}
	if publisher.events[0].EventID != "evt-don-1" {
		t.Fatalf("unexpected event id %s", publisher.events[0].EventID)
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second relay run failed: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatal("published rows must not be re-sent")
	}
}

func newConsumer(store *memory.Store, subscriber *stubSubscriber, mailer *captureMailer) ConfirmationConsumer {
	return ConfirmationConsumer{
		Subscriber: subscriber,
		Ledger:     store,
		Dedup:      store,
		Mailer:     mailer,
		Clock:      store,
	}
}

func TestConfirmationConsumerDeliversMail(t *testing.T) {
	store, _ := newWorkerFixture(t)
	store.SeedDonor(entities.Donor{UserID: "donor-1", Name: "Ada"})
	envelope := recordTestDonation(t, store, "don-1")

	subscriber := &stubSubscriber{}
	mailer := &captureMailer{}
	if err := newConsumer(store, subscriber, mailer).Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := subscriber.handler(context.Background(), envelope); err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	if len(mailer.mails) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.mails))
	}
	mail := mailer.mails[0]
	if mail.Subject != "Donation Confirmation" {
		t.Fatalf("unexpected subject %q", mail.Subject)
	}
	if mail.Greeting != "Hello Ada," {
		t.Fatalf("unexpected greeting %q", mail.Greeting)
	}
	if len(mail.Lines) == 0 || mail.Lines[0] != "Thank you for your generous donation of $10.00 to the campaign: River Cleanup." {
		t.Fatalf("unexpected body %v", mail.Lines)
	}
	if mail.ActionURL != "/donations/don-1" {
		t.Fatalf("unexpected action url %q", mail.ActionURL)
	}
}

func TestConfirmationConsumerSkipsDuplicateEvent(t *testing.T) {
	store, _ := newWorkerFixture(t)
	store.SeedDonor(entities.Donor{UserID: "donor-1", Name: "Ada"})
	envelope := recordTestDonation(t, store, "don-1")

	subscriber := &stubSubscriber{}
	mailer := &captureMailer{}
	consumer := newConsumer(store, subscriber, mailer)
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if err := subscriber.handler(context.Background(), envelope); err != nil {
		t.Fatalf("first handle failed: %v", err)
	}
	if err := subscriber.handler(context.Background(), envelope); err != nil {
		t.Fatalf("replay handle failed: %v", err)
	}
	if len(mailer.mails) != 1 {
		t.Fatalf("duplicate event must not resend, got %d mails", len(mailer.mails))
	}
}

func TestConfirmationConsumerSkipsMissingDonorSilently(t *testing.T) {
	store, _ := newWorkerFixture(t)
	envelope := recordTestDonation(t, store, "don-1")

	subscriber := &stubSubscriber{}
	mailer := &captureMailer{}
	if err := newConsumer(store, subscriber, mailer).Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := subscriber.handler(context.Background(), envelope); err != nil {
		t.Fatalf("handle should not fail for missing donor: %v", err)
	}
	if len(mailer.mails) != 0 {
		t.Fatal("missing donor must not receive mail")
	}
}

func TestConfirmationConsumerFallsBackForMissingCampaign(t *testing.T) {
	store, campaigns := newWorkerFixture(t)
	store.SeedDonor(entities.Donor{UserID: "donor-1", Name: "Ada"})
	envelope := recordTestDonation(t, store, "don-1")
	if err := campaigns.DeleteCampaign(context.Background(), "camp-1"); err != nil {
		t.Fatalf("delete campaign failed: %v", err)
	}

	subscriber := &stubSubscriber{}
	mailer := &captureMailer{}
	if err := newConsumer(store, subscriber, mailer).Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := subscriber.handler(context.Background(), envelope); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if len(mailer.mails) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.mails))
	}
	if !strings.Contains(mailer.mails[0].Lines[0], "Unknown Campaign") {
		t.Fatalf("expected fallback title, got %q", mailer.mails[0].Lines[0])
	}
}
