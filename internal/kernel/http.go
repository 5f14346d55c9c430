// Package kernel builds the HTTP handler: stores, middleware stack, routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/routes"
	"github.com/shashiranjanraj/vendora/app/seed"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/pkg/event"
	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
	"github.com/shashiranjanraj/vendora/pkg/middleware"
	"github.com/shashiranjanraj/vendora/pkg/reqid"
	"github.com/shashiranjanraj/vendora/pkg/router"
)

// New builds the stores and the full HTTP handler. seedDemo loads the demo
// catalogue into the fresh product store before serving.
func New(seedDemo bool) http.Handler {
	products := store.New[models.Product]("product", "prod_")
	orders := store.New[models.Order]("order", "order_")

	registerAuditLog()

	if seedDemo {
		seed.Products(products)
	}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(corsOptions()))
	r.Use(middleware.RateLimit(config.RateLimit(), time.Minute))

	// Prometheus endpoint — no auth, no rate limit concerns at this scale.
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, products, orders)

	return r.Handler()
}

func corsOptions() middleware.CORSOptions {
	opts := middleware.DefaultCORSOptions()
	opts.AllowedOrigins = config.CORSOrigins()
	return opts
}

// registerAuditLog writes one structured log line per store mutation.
func registerAuditLog() {
	for _, name := range []string{
		"product.created", "product.deleted",
		"order.created", "order.deleted",
	} {
		n := name
		event.Listen(n, func(payload interface{}) {
			if rec, ok := payload.(interface{ RecordID() string }); ok {
				logger.Info("store mutation", "event", n, "id", rec.RecordID())
			}
		})
	}
}
