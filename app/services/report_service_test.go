package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vendora/app/models"
)

func order(createdAt, paymentStatus string, total float64) models.Order {
	return models.Order{
		ClientName:    "Acme",
		PaymentStatus: paymentStatus,
		TotalAmount:   total,
		CreatedAt:     createdAt,
	}
}

func TestMetricsEmpty(t *testing.T) {
	m := Metrics(nil, nil)

	assert.Equal(t, 0, m.TotalOrders)
	assert.Equal(t, 0, m.TotalProducts)
	assert.Equal(t, 0, m.PaidPercent, "no orders must yield 0, not a division error")
}

func TestMetricsCountsAndPercent(t *testing.T) {
	orders := []models.Order{
		order("2026-08-27T10:00:00Z", models.PaymentPaid, 10),
		order("2026-08-27T11:00:00Z", models.PaymentPaid, 20),
		order("2026-08-27T12:00:00Z", models.PaymentPending, 30),
	}
	products := []models.Product{{Name: "a"}, {Name: "b"}}

	m := Metrics(orders, products)

	assert.Equal(t, 2, m.TotalProducts)
	assert.Equal(t, 3, m.TotalOrders)
	assert.Equal(t, 2, m.PaidCount)
	assert.Equal(t, 1, m.PendingCount)
	assert.Equal(t, 67, m.PaidPercent, "2/3 rounds to 67")
}

func TestMetricsRefundedCountsInNeither(t *testing.T) {
	orders := []models.Order{
		order("2026-08-27T10:00:00Z", models.PaymentRefunded, 10),
	}

	m := Metrics(orders, nil)

	assert.Equal(t, 1, m.TotalOrders)
	assert.Equal(t, 0, m.PaidCount)
	assert.Equal(t, 0, m.PendingCount)
	assert.Equal(t, 0, m.PaidPercent)
}

func TestDailySeriesAlwaysFullWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	series := dailySeriesAt(nil, 30, now)

	require.Len(t, series, 30)
	assert.Equal(t, "2026-07-30", series[0].Date, "oldest first")
	assert.Equal(t, "2026-08-28", series[29].Date, "window includes today")
	for i := 1; i < len(series); i++ {
		assert.Greater(t, series[i].Date, series[i-1].Date, "dates must strictly increase")
	}
	for _, p := range series {
		assert.Zero(t, p.TotalRevenue)
		assert.Zero(t, p.PaidCount)
		assert.Zero(t, p.PendingCount)
	}
}

func TestDailySeriesBucketsByUTCDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		order("2026-08-28T00:05:00Z", models.PaymentPaid, 50),
		order("2026-08-28T23:55:00Z", models.PaymentPending, 25),
		order("2026-08-27T12:00:00Z", models.PaymentPaid, 10),
		order("2026-06-01T12:00:00Z", models.PaymentPaid, 999), // outside window
	}

	series := dailySeriesAt(orders, 30, now)
	require.Len(t, series, 30)

	today := series[29]
	assert.Equal(t, "2026-08-28", today.Date)
	assert.Equal(t, 75.0, today.TotalRevenue)
	assert.Equal(t, 1, today.PaidCount)
	assert.Equal(t, 1, today.PendingCount)

	yesterday := series[28]
	assert.Equal(t, 10.0, yesterday.TotalRevenue)
	assert.Equal(t, 1, yesterday.PaidCount)

	var windowTotal float64
	for _, p := range series {
		windowTotal += p.TotalRevenue
	}
	assert.Equal(t, 85.0, windowTotal, "orders outside the window are ignored")
}

func TestDailySeriesCustomWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	series := dailySeriesAt(nil, 7, now)

	require.Len(t, series, 7)
	assert.Equal(t, "2026-08-22", series[0].Date)
	assert.Equal(t, "2026-08-28", series[6].Date)
}
