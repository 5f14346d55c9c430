// Package services holds the read-side computations behind the dashboard.
package services

import (
	"math"
	"strings"
	"time"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/pkg/collection"
)

// DefaultWindowDays is the chart window when the caller does not ask for one.
const DefaultWindowDays = 30

// DashboardMetrics are the numbers behind the dashboard metric cards.
type DashboardMetrics struct {
	TotalProducts int `json:"totalProducts"`
	TotalOrders   int `json:"totalOrders"`
	PaidCount     int `json:"paidCount"`
	PendingCount  int `json:"pendingCount"`
	PaidPercent   int `json:"paidPercent"`
}

// DailyPoint is one day of the orders/revenue chart.
type DailyPoint struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"totalRevenue"`
	PaidCount    int     `json:"paidCount"`
	PendingCount int     `json:"pendingCount"`
}

// Metrics recomputes the card numbers from the given snapshots on every
// call. Stateless: identical inputs always yield identical output.
// PaidPercent is 0, not a division error, when there are no orders.
func Metrics(orders []models.Order, products []models.Product) DashboardMetrics {
	paid := collection.Filter(orders, func(o models.Order) bool {
		return o.PaymentStatus == models.PaymentPaid
	})
	pending := collection.Filter(orders, func(o models.Order) bool {
		return o.PaymentStatus == models.PaymentPending
	})

	percent := 0
	if len(orders) > 0 {
		percent = int(math.Round(float64(len(paid)) / float64(len(orders)) * 100))
	}

	return DashboardMetrics{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		PaidCount:     len(paid),
		PendingCount:  len(pending),
		PaidPercent:   percent,
	}
}

// DailySeries buckets orders into the trailing `days` calendar days,
// oldest first and including today. Every day yields a row even when no
// orders matched, so the result always has exactly `days` entries.
//
// Bucketing is by UTC day: order createdAt is stamped as UTC RFC3339, so a
// date-prefix match against a UTC day string is exact.
func DailySeries(orders []models.Order, days int) []DailyPoint {
	return dailySeriesAt(orders, days, time.Now().UTC())
}

func dailySeriesAt(orders []models.Order, days int, now time.Time) []DailyPoint {
	out := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")

		dayOrders := collection.Filter(orders, func(o models.Order) bool {
			return strings.HasPrefix(o.CreatedAt, day)
		})

		paid := collection.Filter(dayOrders, func(o models.Order) bool {
			return o.PaymentStatus == models.PaymentPaid
		})
		pending := collection.Filter(dayOrders, func(o models.Order) bool {
			return o.PaymentStatus == models.PaymentPending
		})

		out = append(out, DailyPoint{
			Date: day,
			TotalRevenue: collection.Sum(dayOrders, func(o models.Order) float64 {
				return o.TotalAmount
			}),
			PaidCount:    len(paid),
			PendingCount: len(pending),
		})
	}
	return out
}
