package app

import (
	"net/http"

	_ "github.com/josumamgar-gif/App-Aqualan/docs"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/handlers"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterOptions struct {
	AllowOrigins []string
	// Health and RateLimiter are optional.
	Health      http.Handler
	RateLimiter middleware.RateLimiter
}

// NewRouter mounts the storefront API.
func NewRouter(svc *Services, opts RouterOptions) http.Handler {

	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	cartHandler := handlers.NewCartHandler(svc.Cart)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)
	deliveryHandler := handlers.NewDeliveryHandler(svc.Delivery)
	orderHandler := handlers.NewOrderHandler(svc.History)
	offerHandler := handlers.NewOfferHandler(svc.Offer)

	rateLimit := middleware.NewRateLimitMiddleware(opts.RateLimiter)

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("GET /api/v1/delivery/zones", deliveryHandler.ListZones())
	routerMux.HandleFunc("GET /api/v1/delivery/date", deliveryHandler.LookupDate())
	routerMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.GetStatus())
	routerMux.HandleFunc("POST /api/v1/checkout", rateLimit.Limit("checkout", checkoutHandler.Submit()))
	routerMux.HandleFunc("POST /api/v1/checkout/begin", checkoutHandler.Begin())
	routerMux.HandleFunc("POST /api/v1/checkout/reset", checkoutHandler.Reset())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("GET /api/v1/offers/options", offerHandler.Options())
	routerMux.HandleFunc("POST /api/v1/offers", rateLimit.Limit("offer", offerHandler.Submit()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	if opts.Health != nil {
		routerMux.Handle("GET /health", opts.Health)
	}

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.CORS(opts.AllowOrigins)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Recover(handler)
	handler = otelhttp.NewHandler(handler, "aqualan-storefront")

	return handler
}
