package app

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/cache"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/josumamgar-gif/App-Aqualan/pkg/backend"
	"github.com/josumamgar-gif/App-Aqualan/pkg/sendgrid"
)

// Services is the storefront core shared by the HTTP server and the CLI.
type Services struct {
	Backend  *backend.Client
	Catalog  service.CatalogService
	Cart     service.CartService
	Checkout service.CheckoutService
	History  service.OrderHistoryService
	Delivery service.DeliveryService
	Offer    service.OfferService
}

func NewServices(cfg *config.Config, store storage.Store, backends storage.Backends) (*Services, error) {

	client, err := backend.NewClient(cfg.Backend)
	if err != nil {
		return nil, err
	}

	if !client.HasBackend() {
		slog.Warn("Backend URL is not configured, remote operations will fail", slog.String("url", client.BaseURL()))
	}

	validate := validator.New()

	var catalogAPI service.CatalogAPI = client
	if backends.Redis != nil && cfg.Catalog.CacheTTL > 0 {
		catalogAPI = service.NewCachedCatalogAPI(client, cache.NewRedisCache(backends.Redis, cfg.Storage.Redis.Namespace, cfg.Catalog.CacheTTL), cfg.Catalog.CacheTTL)
		slog.Info("Catalog cache enabled", slog.Duration("ttl", cfg.Catalog.CacheTTL))
	}

	catalogService := service.NewCatalogService(catalogAPI)
	cartService := service.NewCartService(repository.NewCartRepo(store), catalogService)

	var historyService service.OrderHistoryService
	if models.HistoryMode(cfg.Variant.History) == models.HistoryModeRemote {
		historyService = service.NewRemoteHistoryService(client, validate)
	} else {
		historyService = service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), cfg.History.Location())
	}

	notifier := service.NewNoopNotifier()
	if cfg.SendGrid.APIKey != "" {
		notifier = service.NewEmailNotifier(sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}

	mode := models.DeliveryMode(cfg.Variant.Delivery)

	slog.Info("Storefront services initialized",
		slog.String("delivery_variant", cfg.Variant.Delivery),
		slog.String("history_variant", cfg.Variant.History),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	return &Services{
		Backend:  client,
		Catalog:  catalogService,
		Cart:     cartService,
		Checkout: service.NewCheckoutService(cartService, historyService, client, notifier, validate, mode),
		History:  historyService,
		Delivery: service.NewDeliveryService(client, mode),
		Offer:    service.NewOfferService(client, validate),
	}, nil
}
