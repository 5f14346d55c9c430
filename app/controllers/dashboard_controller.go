package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/pkg/response"
)

// DashboardController serves the aggregations the dashboard UI used to
// compute client-side. Everything is recomputed from a fresh snapshot per
// request; there is no caching.
type DashboardController struct {
	orders   *store.Store[models.Order]
	products *store.Store[models.Product]
}

func NewDashboardController(orders *store.Store[models.Order], products *store.Store[models.Product]) *DashboardController {
	return &DashboardController{orders: orders, products: products}
}

// Metrics returns the metric card numbers.
func (c *DashboardController) Metrics(w http.ResponseWriter, r *http.Request) {
	response.Success(w, services.Metrics(c.orders.List(), c.products.List()))
}

// Chart returns the trailing daily revenue/status series. `days` defaults
// to 30 and is clamped to a sane window.
func (c *DashboardController) Chart(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", services.DefaultWindowDays)
	if days < 1 || days > 365 {
		days = services.DefaultWindowDays
	}
	response.Success(w, services.DailySeries(c.orders.List(), days))
}
