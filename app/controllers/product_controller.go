package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/store"
	"github.com/shashiranjanraj/vendora/pkg/bind"
	"github.com/shashiranjanraj/vendora/pkg/collection"
	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/response"
)

type ProductController struct {
	products *store.Store[models.Product]
}

func NewProductController(products *store.Store[models.Product]) *ProductController {
	return &ProductController{products: products}
}

// List returns one page of the catalogue, newest first. `total` is always
// the full collection size; an out-of-range page yields an empty slice, not
// an error.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "perPage", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}

	all := c.products.List()
	items := collection.Paginate(all, page, perPage)
	if items == nil {
		items = []models.Product{}
	}

	response.Collection(w, items, len(all))
}

// Create validates the payload and stores a new product.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	for i, n := range in.Sales {
		if n < 0 {
			errs[fmt.Sprintf("sales.%d", i)] = "Sales counts must be zero or positive."
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product := c.products.Create(in.Product())
	logger.WithCtx(r.Context()).Info("product created", "id", product.ID, "sku", product.SKU)
	response.Created(w, product)
}

// Delete removes a product by the id query parameter. Deleting an id that
// does not exist still succeeds; the operation is idempotent.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "Missing id")
		return
	}

	if !c.products.DeleteByID(id) {
		logger.WithCtx(r.Context()).Debug("delete of absent product", "id", id)
	}
	response.OK(w)
}
