package campaignservice

import (
	"log/slog"

	httpadapter "fundflow/contexts/fundraising/campaign-service/adapters/http"
	"fundflow/contexts/fundraising/campaign-service/adapters/memory"
	"fundflow/contexts/fundraising/campaign-service/application/commands"
	"fundflow/contexts/fundraising/campaign-service/application/queries"
	"fundflow/contexts/fundraising/campaign-service/domain/entities"
	"fundflow/contexts/fundraising/campaign-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	Owners      ports.OwnerDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns:   deps.Campaigns,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteCampaign := commands.DeleteCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Owners:    deps.Owners,
		Logger:    deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Owners:    deps.Owners,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: createCampaign,
			UpdateCampaign: updateCampaign,
			DeleteCampaign: deleteCampaign,
			GetCampaign:    getCampaign,
			ListCampaigns:  listCampaigns,
			Logger:         deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns:   store,
		Owners:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
