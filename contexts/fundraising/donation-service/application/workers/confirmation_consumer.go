package workers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	application "fundflow/contexts/fundraising/donation-service/application"
	"fundflow/contexts/fundraising/donation-service/application/commands"
	domainerrors "fundflow/contexts/fundraising/donation-service/domain/errors"
	"fundflow/contexts/fundraising/donation-service/ports"
)

const (
	defaultConfirmationConsumerGroup = "donation-service-confirmation-cg"
	fallbackCampaignTitle            = "Unknown Campaign"
)

// ConfirmationConsumer delivers the donor-facing confirmation message for
// donation.received events. Delivery is at-least-once: the dedup reservation
// narrows the window, but a crash after Send and before commit of the
// reservation may repeat a message, which is acceptable for a best-effort
// confirmation.
type ConfirmationConsumer struct {
	Subscriber    ports.EventSubscriber
	Ledger        ports.DonationLedger
	Dedup         ports.EventDedupStore
	Mailer        ports.Mailer
	Clock         ports.Clock
	ConsumerGroup string
	DedupTTL      time.Duration
	Logger        *slog.Logger
}

func (c ConfirmationConsumer) Start(ctx context.Context) error {
	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultConfirmationConsumerGroup
	}
	return c.Subscriber.Subscribe(ctx, commands.DonationReceivedTopic, group, c.handleDonationReceived)
}

func (c ConfirmationConsumer) handleDonationReceived(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)
	now := time.Now().UTC()
	if c.Clock != nil {
		now = c.Clock.Now().UTC()
	}

	alreadyProcessed, err := c.Dedup.ReserveEvent(ctx, event.EventID, hashPayload(event.Data), now.Add(c.dedupTTL()))
	if err != nil {
		logger.Error("donation.received dedupe failed",
			"event", "donation_confirmation_dedupe_failed",
			"module", "fundraising/donation-service",
			"layer", "worker",
			"event_id", event.EventID,
			"error", err.Error(),
		)
		return err
	}
	if alreadyProcessed {
		logger.Debug("donation.received already processed",
			"event", "donation_confirmation_replayed",
			"module", "fundraising/donation-service",
			"layer", "worker",
			"event_id", event.EventID,
		)
		return nil
	}

	var payload struct {
		DonationID string `json:"donation_id"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("decode donation.received payload: %w", err)
	}
	if strings.TrimSpace(payload.DonationID) == "" {
		return fmt.Errorf("donation.received payload missing donation_id")
	}

	detail, err := c.Ledger.GetDonationDetail(ctx, payload.DonationID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDonationNotFound) {
			// The row vanished between enqueue and delivery; nothing to send
			// and nothing to retry.
			logger.Warn("donation gone before confirmation",
				"event", "donation_confirmation_row_missing",
				"module", "fundraising/donation-service",
				"layer", "worker",
				"donation_id", payload.DonationID,
			)
			return nil
		}
		return err
	}

	if detail.Donor == nil {
		// Unresolvable donor is a silent skip, not a failure.
		logger.Info("donation confirmation skipped, donor unresolved",
			"event", "donation_confirmation_skipped",
			"module", "fundraising/donation-service",
			"layer", "worker",
			"donation_id", detail.Donation.DonationID,
		)
		return nil
	}

	campaignTitle := fallbackCampaignTitle
	if detail.Campaign != nil {
		campaignTitle = detail.Campaign.Title
	}

	amount := strconv.FormatFloat(detail.Donation.Amount, 'f', 2, 64)
	mail := ports.Mail{
		RecipientID:   detail.Donor.UserID,
		RecipientName: detail.Donor.Name,
		Subject:       "Donation Confirmation",
		Greeting:      "Hello " + detail.Donor.Name + ",",
		Lines: []string{
			"Thank you for your generous donation of $" + amount + " to the campaign: " + campaignTitle + ".",
			"Your support is greatly appreciated!",
			"Thank you for using our application!",
		},
		ActionText: "View Donation",
		ActionURL:  "/donations/" + detail.Donation.DonationID,
	}
	if err := c.Mailer.Send(ctx, mail); err != nil {
		logger.Error("donation confirmation delivery failed",
			"event", "donation_confirmation_delivery_failed",
			"module", "fundraising/donation-service",
			"layer", "worker",
			"donation_id", detail.Donation.DonationID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("donation confirmation delivered",
		"event", "donation_confirmation_delivered",
		"module", "fundraising/donation-service",
		"layer", "worker",
		"donation_id", detail.Donation.DonationID,
		"donor_id", detail.Donor.UserID,
	)
	return nil
}

func (c ConfirmationConsumer) dedupTTL() time.Duration {
	if c.DedupTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return c.DedupTTL
}

func hashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
