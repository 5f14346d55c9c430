package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vendora/app/controllers"
	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/app/store"
)

type metricsResponse struct {
	Data services.DashboardMetrics `json:"data"`
}

type chartResponse struct {
	Data []services.DailyPoint `json:"data"`
}

func newDashboardFixture() (*store.Store[models.Order], *store.Store[models.Product], *controllers.DashboardController) {
	orders := store.New[models.Order]("order", "order_")
	products := store.New[models.Product]("product", "prod_")
	return orders, products, controllers.NewDashboardController(orders, products)
}

func TestDashboardMetrics(t *testing.T) {
	orders, products, c := newDashboardFixture()
	products.Create(models.Product{Name: "a"})
	products.Create(models.Product{Name: "b"})
	orders.Create(models.Order{ClientName: "x", PaymentStatus: models.PaymentPaid, TotalAmount: 10})
	orders.Create(models.Order{ClientName: "y", PaymentStatus: models.PaymentPending, TotalAmount: 20})

	rec := httptest.NewRecorder()
	c.Metrics(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body metricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Data.TotalProducts)
	assert.Equal(t, 2, body.Data.TotalOrders)
	assert.Equal(t, 1, body.Data.PaidCount)
	assert.Equal(t, 1, body.Data.PendingCount)
	assert.Equal(t, 50, body.Data.PaidPercent)
}

func TestDashboardMetricsEmptyStores(t *testing.T) {
	_, _, c := newDashboardFixture()

	rec := httptest.NewRecorder()
	c.Metrics(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics", nil))

	var body metricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Data.PaidPercent)
}

func TestDashboardChartDefaultWindow(t *testing.T) {
	orders, _, c := newDashboardFixture()
	// Stamped with today's UTC date by the store, so it lands in the last bucket.
	orders.Create(models.Order{ClientName: "x", PaymentStatus: models.PaymentPaid, TotalAmount: 42})

	rec := httptest.NewRecorder()
	c.Chart(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body chartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Data, 30)
	today := time.Now().UTC().Format("2006-01-02")
	last := body.Data[29]
	assert.Equal(t, today, last.Date)
	assert.Equal(t, 42.0, last.TotalRevenue)
	assert.Equal(t, 1, last.PaidCount)
}

func TestDashboardChartCustomAndClampedWindow(t *testing.T) {
	_, _, c := newDashboardFixture()

	rec := httptest.NewRecorder()
	c.Chart(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart?days=7", nil))
	var body chartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 7)

	rec = httptest.NewRecorder()
	c.Chart(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart?days=-1", nil))
	body = chartResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 30, "bad window falls back to the default")
}
