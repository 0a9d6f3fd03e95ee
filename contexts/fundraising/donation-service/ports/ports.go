package ports

import (
	"context"
	"time"

	"fundflow/contexts/fundraising/donation-service/domain/entities"
	"fundflow/internal/shared/events"
)

type EventEnvelope = events.Envelope

type DonationPage struct {
	Items       []entities.DonationDetail
	TotalCount  int64
	CurrentPage int
	PerPage     int
}

// DonationLedger is the persistence boundary for the donation workflow.
//
// RecordDonation is the atomic unit the workflow depends on: verify the
// campaign exists and is active, insert the donation row, add the amount to
// the campaign balance with a storage-level increment, and append the
// confirmation envelope to the outbox. All of it commits or none of it does.
type DonationLedger interface {
	RecordDonation(ctx context.Context, donation entities.Donation, envelope EventEnvelope) error
	GetDonationDetail(ctx context.Context, donationID string) (entities.DonationDetail, error)
	ListDonationsByDonor(ctx context.Context, donorID string, page int, perPage int) (DonationPage, error)
}

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}

type EventDedupStore interface {
	ReserveEvent(ctx context.Context, eventID string, payloadHash string, expiresAt time.Time) (bool, error)
}

// Mail is the rendered confirmation message handed to the mailer.
type Mail struct {
	RecipientID   string
	RecipientName string
	Subject       string
	Greeting      string
	Lines         []string
	ActionText    string
	ActionURL     string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
