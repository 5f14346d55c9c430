package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/pkg/bind"
	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/response"
)

type OrderController struct {
	orders *store.Store[models.Order]
}

func NewOrderController(orders *store.Store[models.Order]) *OrderController {
	return &OrderController{orders: orders}
}

// List returns the full order collection, newest first. Orders are not
// paginated; the dashboard consumes the whole snapshot.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	all := c.orders.List()
	if all == nil {
		all = []models.Order{}
	}
	response.Collection(w, all, len(all))
}

// Create validates the payload and stores a new order. Line items are
// checked individually so the error key carries the failing index.
// Product references are NOT checked against the catalogue.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.OrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			errs[fmt.Sprintf("items.%d.productId", i)] = "Each line item must reference a product."
		}
		if item.Quantity < 1 {
			errs[fmt.Sprintf("items.%d.quantity", i)] = "Quantity must be at least 1."
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	order := c.orders.Create(in.Order())
	logger.WithCtx(r.Context()).Info("order created",
		"id", order.ID,
		"client", order.ClientName,
		"total", order.TotalAmount,
	)
	response.Created(w, order)
}

// Delete removes an order by the id query parameter, with the same
// idempotent semantics as product deletion.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "Missing id")
		return
	}

	if !c.orders.DeleteByID(id) {
		logger.WithCtx(r.Context()).Debug("delete of absent order", "id", id)
	}
	response.OK(w)
}
