package routes

import (
	"github.com/shashiranjanraj/vendora/app/controllers"
	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/pkg/router"
)

// RegisterAPI mounts the admin API under /api.
func RegisterAPI(r *router.Router, products *store.Store[models.Product], orders *store.Store[models.Order]) {
	productController := controllers.NewProductController(products)
	orderController := controllers.NewOrderController(orders)
	dashboardController := controllers.NewDashboardController(orders, products)

	api := r.Group("/api")

	api.Get("/products", "products.index", productController.List)
	api.Post("/products", "products.store", productController.Create)
	api.Delete("/products", "products.destroy", productController.Delete)

	api.Get("/orders", "orders.index", orderController.List)
	api.Post("/orders", "orders.store", orderController.Create)
	api.Delete("/orders", "orders.destroy", orderController.Delete)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/metrics", "dashboard.metrics", dashboardController.Metrics)
	dashboard.Get("/chart", "dashboard.chart", dashboardController.Chart)
}
