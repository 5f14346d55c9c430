package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vendora/app/controllers"
	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/store"
)

type orderListResponse struct {
	Data  []models.Order `json:"data"`
	Total int            `json:"total"`
}

type orderCreateResponse struct {
	Data models.Order `json:"data"`
}

func newOrderFixture() (*store.Store[models.Order], *controllers.OrderController) {
	orders := store.New[models.Order]("order", "order_")
	return orders, controllers.NewOrderController(orders)
}

const validOrderPayload = `{
	"clientName": "Acme Corp",
	"deliveryAddress": "1 Main St, Springfield",
	"items": [{"productId": "prod_abc", "quantity": 2}, {"productId": "prod_def", "quantity": 1}],
	"paymentStatus": "Paid",
	"deliveryStatus": "Pending",
	"totalAmount": 224.48,
	"expectedDelivery": "2026-09-05"
}`

func TestOrderCreate(t *testing.T) {
	orders, c := newOrderFixture()

	rec := httptest.NewRecorder()
	c.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(validOrderPayload)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body orderCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.NotEmpty(t, body.Data.ID)
	assert.Equal(t, "Acme Corp", body.Data.ClientName)
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "prod_abc", body.Data.Items[0].ProductID)
	assert.Equal(t, 2, body.Data.Items[0].Quantity)
	assert.Equal(t, 224.48, body.Data.TotalAmount)
	assert.NotEmpty(t, body.Data.CreatedAt)

	assert.Equal(t, 1, orders.Len())
}

func TestOrderCreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(m map[string]interface{})
		field string
	}{
		{"missing client name", func(m map[string]interface{}) { delete(m, "clientName") }, "clientName"},
		{"empty delivery address", func(m map[string]interface{}) { m["deliveryAddress"] = "" }, "deliveryAddress"},
		{"no items", func(m map[string]interface{}) { m["items"] = []interface{}{} }, "items"},
		{"bad payment status", func(m map[string]interface{}) { m["paymentStatus"] = "Owed" }, "paymentStatus"},
		{"bad delivery status", func(m map[string]interface{}) { m["deliveryStatus"] = "Teleported" }, "deliveryStatus"},
		{"negative total", func(m map[string]interface{}) { m["totalAmount"] = -5 }, "totalAmount"},
		{"bad expected delivery", func(m map[string]interface{}) { m["expectedDelivery"] = "someday" }, "expectedDelivery"},
		{
			"zero quantity",
			func(m map[string]interface{}) {
				m["items"] = []interface{}{map[string]interface{}{"productId": "prod_abc", "quantity": 0}}
			},
			"items.0.quantity",
		},
		{
			"item without product",
			func(m map[string]interface{}) {
				m["items"] = []interface{}{map[string]interface{}{"productId": "", "quantity": 1}}
			},
			"items.0.productId",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validOrderPayload), &payload))
			tc.mut(payload)
			raw, err := json.Marshal(payload)
			require.NoError(t, err)

			orders, c := newOrderFixture()
			rec := httptest.NewRecorder()
			c.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(raw)))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, tc.field)
			assert.Equal(t, 0, orders.Len())
		})
	}
}

func TestOrderListUnpaginated(t *testing.T) {
	orders, c := newOrderFixture()
	for i := 0; i < 25; i++ {
		orders.Create(models.Order{ClientName: "Acme", PaymentStatus: models.PaymentPending})
	}

	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body orderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body.Data, 25, "orders are not paginated")
	assert.Equal(t, 25, body.Total)
}

func TestOrderListEmpty(t *testing.T) {
	_, c := newOrderFixture()

	rec := httptest.NewRecorder()
	c.List(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestOrderDelete(t *testing.T) {
	orders, c := newOrderFixture()
	target := orders.Create(models.Order{ClientName: "Acme"})

	rec := httptest.NewRecorder()
	c.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/orders?id="+target.ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 0, orders.Len())
}

func TestOrderDeleteMissingID(t *testing.T) {
	_, c := newOrderFixture()

	rec := httptest.NewRecorder()
	c.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/orders", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
