package donationservice

import (
	"log/slog"

	campaignmemory "fundflow/contexts/fundraising/campaign-service/adapters/memory"
	httpadapter "fundflow/contexts/fundraising/donation-service/adapters/http"
	"fundflow/contexts/fundraising/donation-service/adapters/memory"
	"fundflow/contexts/fundraising/donation-service/application/commands"
	"fundflow/contexts/fundraising/donation-service/application/queries"
	"fundflow/contexts/fundraising/donation-service/application/workers"
	"fundflow/contexts/fundraising/donation-service/ports"
)

type Module struct {
	Handler      httpadapter.Handler
	Relay        workers.OutboxRelay
	Confirmation workers.ConfirmationConsumer
	Store        *memory.Store
}

type Dependencies struct {
	Ledger      ports.DonationLedger
	Outbox      ports.OutboxRepository
	Publisher   ports.EventPublisher
	Subscriber  ports.EventSubscriber
	Dedup       ports.EventDedupStore
	Mailer      ports.Mailer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submitDonation := commands.SubmitDonationUseCase{
		Ledger:      deps.Ledger,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	getDonation := queries.GetDonationUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	listDonations := queries.ListDonationsUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SubmitDonation: submitDonation,
			GetDonation:    getDonation,
			ListDonations:  listDonations,
			Logger:         deps.Logger,
		},
		Relay: workers.OutboxRelay{
			Outbox:    deps.Outbox,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		Confirmation: workers.ConfirmationConsumer{
			Subscriber: deps.Subscriber,
			Ledger:     deps.Ledger,
			Dedup:      deps.Dedup,
			Mailer:     deps.Mailer,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule wires the donation workflow over the in-process campaign
// store so both contexts move one balance.
func NewInMemoryModule(
	campaigns *campaignmemory.Store,
	publisher ports.EventPublisher,
	subscriber ports.EventSubscriber,
	mailer ports.Mailer,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(campaigns)
	module := NewModule(Dependencies{
		Ledger:      store,
		Outbox:      store,
		Publisher:   publisher,
		Subscriber:  subscriber,
		Dedup:       store,
		Mailer:      mailer,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
