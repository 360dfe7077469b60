package model

import "time"

// Order lifecycle values. "failed" is declared but no flow currently sets it.
const (
	OrderStatusProcessing = "processing"
	OrderStatusPlaced     = "order placed"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// CheckoutItemInput is the untrusted client shape for one cart line.
// Quantity is decoded as float64 so a fractional value can be dropped
// during normalization instead of failing the whole request.
type CheckoutItemInput struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId"`
	Quantity  float64 `json:"quantity"`
}

// OrderLine is one priced line of an order. Derived, never client-supplied.
type OrderLine struct {
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	LineTotal   int64  `json:"lineTotal"`
	ProductName string `json:"productName"`
	VariantName string `json:"variantName"`
	ImageURL    string `json:"imageUrl"`
}

// ShippingAddress holds the delivery destination. Every field is required.
type ShippingAddress struct {
	UserLabel       string `json:"userLabel"`
	PhoneNumber     string `json:"phoneNumber"`
	SpecificAddress string `json:"specificAddress"`
	Street          string `json:"street"`
	Area            string `json:"area"`
	Postcode        string `json:"postcode"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
}

// OrderSnapshot is the persisted order record. Keyed by (UserID, CreatedAt);
// OrderID is a globally unique secondary identifier. All amounts are integer
// minor currency units.
type OrderSnapshot struct {
	UserID           string          `json:"userId"`
	CreatedAt        time.Time       `json:"createdAt"`
	OrderID          string          `json:"orderId"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	PaymentMode      string          `json:"paymentMode"`
	PaymentDetails   string          `json:"paymentDetails"`
	Subtotal         int64           `json:"subtotal"`
	ShippingFee      int64           `json:"shippingFee"`
	Tax              int64           `json:"tax"`
	Total            int64           `json:"total"`
	Currency         string          `json:"currency"`
	Lines            []OrderLine     `json:"lines"`
	ShippingAddress  ShippingAddress `json:"shippingAddress"`
	CustomerName     string          `json:"customerName,omitempty"`
	CustomerEmail    string          `json:"customerEmail,omitempty"`
	CustomerPhone    string          `json:"customerPhone,omitempty"`
	GatewayOrderID   string          `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string          `json:"gatewayPaymentId,omitempty"`
	GatewaySignature string          `json:"gatewaySignature,omitempty"`
}

// OrderStatusUpdate is the only mutation the store accepts after creation.
// ExpectedGatewayOrderID guards the update: rows whose stored gateway order id
// differs are left untouched.
type OrderStatusUpdate struct {
	Status                 string
	PaymentStatus          string
	GatewayPaymentID       string
	GatewaySignature       string
	ExpectedGatewayOrderID string
}

// GatewayOrder is the remote payment provider's order resource.
type GatewayOrder struct {
	GatewayOrderID string
	Amount         int64
	Currency       string
}
