package models

import "strings"

// salesWindow is the number of trailing daily sales counts kept per product.
const salesWindow = 7

// Product is an item in the storefront catalogue.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	Sales       []int   `json:"sales"`
}

func (p Product) RecordID() string { return p.ID }

// Identified returns a copy carrying the store-assigned identity. Any id or
// createdAt supplied in the payload is overwritten here.
func (p Product) Identified(id, createdAt string) Product {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}

// ProductInput is the request body accepted by POST /api/products.
// The SKU is not checked for uniqueness; duplicate SKUs are accepted.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	SKU         string  `json:"sku"         validate:"required,max=100"`
	Category    string  `json:"category"    validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"integer,gte=0"`
	Description string  `json:"description" validate:"nullable,max=2000"`
	ImageURL    string  `json:"imageUrl"    validate:"nullable,url"`
	Active      *bool   `json:"active"`
	Sales       []int   `json:"sales"       validate:"nullable,size=7"`
}

// Product builds the record to store: SKU upper-cased, active defaulting to
// true and sales defaulting to a zeroed week when omitted.
func (in ProductInput) Product() Product {
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	sales := in.Sales
	if sales == nil {
		sales = make([]int, salesWindow)
	}

	return Product{
		Name:        in.Name,
		SKU:         strings.ToUpper(in.SKU),
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Active:      active,
		Sales:       sales,
	}
}
