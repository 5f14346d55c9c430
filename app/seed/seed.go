// Package seed loads the demo catalogue the dashboard ships with.
package seed

import (
	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/pkg/logger"
)

// Products inserts the demo products. Ids and timestamps are assigned by the
// store like any other create.
func Products(products *store.Store[models.Product]) {
	for _, p := range demoProducts {
		products.Create(p)
	}
	logger.Info("seeded demo catalogue", "products", len(demoProducts))
}

var demoProducts = []models.Product{
	{
		Name:        "Wireless Headphones",
		SKU:         "WH-001",
		Category:    "Electronics",
		Price:       99.99,
		Stock:       120,
		Description: "Comfortable wireless headphones.",
		Active:      true,
		Sales:       []int{4, 6, 5, 8, 10, 6, 9},
	},
	{
		Name:        "Oak Standing Desk",
		SKU:         "SD-014",
		Category:    "Furniture",
		Price:       449.00,
		Stock:       18,
		Description: "Height-adjustable desk with solid oak top.",
		Active:      true,
		Sales:       []int{1, 0, 2, 1, 0, 3, 1},
	},
	{
		Name:        "Canvas Tote Bag",
		SKU:         "TB-203",
		Category:    "Accessories",
		Price:       24.50,
		Stock:       300,
		Active:      true,
		Sales:       []int{12, 9, 14, 11, 8, 10, 13},
	},
}
