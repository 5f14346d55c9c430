package models

// Payment statuses accepted on an order.
const (
	PaymentPaid     = "Paid"
	PaymentPending  = "Pending"
	PaymentRefunded = "Refunded"
)

// Delivery statuses accepted on an order.
const (
	DeliveryPending   = "Pending"
	DeliveryShipped   = "Shipped"
	DeliveryDelivered = "Delivered"
	DeliveryCanceled  = "Canceled"
)

// LineItem pairs a referenced product with its ordered quantity.
// The product reference is not checked against the catalogue; an order may
// name a product that was deleted after it was placed.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is a placed customer order.
// TotalAmount is computed by the caller at creation time; the store does not
// recompute it against line items.
type Order struct {
	ID               string     `json:"id"`
	ClientName       string     `json:"clientName"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	Items            []LineItem `json:"items"`
	PaymentStatus    string     `json:"paymentStatus"`
	DeliveryStatus   string     `json:"deliveryStatus"`
	TotalAmount      float64    `json:"totalAmount"`
	ExpectedDelivery string     `json:"expectedDelivery"`
	CreatedAt        string     `json:"createdAt"`
}

func (o Order) RecordID() string { return o.ID }

// Identified returns a copy carrying the store-assigned identity.
func (o Order) Identified(id, createdAt string) Order {
	o.ID = id
	o.CreatedAt = createdAt
	return o
}

// OrderInput is the request body accepted by POST /api/orders.
// Per-item checks (non-empty productId, quantity >= 1) live in the order
// controller since they need the item index for the error key.
type OrderInput struct {
	ClientName       string     `json:"clientName"       validate:"required,max=255"`
	DeliveryAddress  string     `json:"deliveryAddress"  validate:"required"`
	Items            []LineItem `json:"items"            validate:"required"`
	PaymentStatus    string     `json:"paymentStatus"    validate:"required,in=Paid,Pending,Refunded"`
	DeliveryStatus   string     `json:"deliveryStatus"   validate:"required,in=Pending,Shipped,Delivered,Canceled"`
	TotalAmount      float64    `json:"totalAmount"      validate:"gte=0"`
	ExpectedDelivery string     `json:"expectedDelivery" validate:"required,date"`
}

// Order builds the record to store.
func (in OrderInput) Order() Order {
	return Order{
		ClientName:       in.ClientName,
		DeliveryAddress:  in.DeliveryAddress,
		Items:            in.Items,
		PaymentStatus:    in.PaymentStatus,
		DeliveryStatus:   in.DeliveryStatus,
		TotalAmount:      in.TotalAmount,
		ExpectedDelivery: in.ExpectedDelivery,
	}
}
