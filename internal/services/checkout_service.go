package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/identity"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderStore is the durable keyed storage for order snapshots. GetOrder
// returns (nil, nil) for a miss; UpdateOrderStatus reports how many rows the
// guarded update touched.
type OrderStore interface {
	GetOrder(ctx context.Context, userID string, createdAt time.Time) (*model.OrderSnapshot, error)
	PutOrder(ctx context.Context, o *model.OrderSnapshot) error
	ListOrdersByUser(ctx context.Context, userID string) ([]model.OrderSnapshot, error)
	UpdateOrderStatus(ctx context.Context, userID string, createdAt time.Time, update model.OrderStatusUpdate) (int64, error)
}

// PaymentGateway is the remote payment provider surface.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) (bool, error)
	KeyID() string
}

// CheckoutService drives checkout-session creation: price the cart, assemble
// the snapshot, open a gateway order and persist the pending record. The
// gateway call comes first so a gateway failure leaves nothing behind.
type CheckoutService struct {
	Pricing  *PricingService
	Store    OrderStore
	Gateway  PaymentGateway
	Currency string

	now func() time.Time
}

func NewCheckoutService(pricing *PricingService, store OrderStore, gateway PaymentGateway, currency string) *CheckoutService {
	return &CheckoutService{
		Pricing:  pricing,
		Store:    store,
		Gateway:  gateway,
		Currency: currency,
		now:      time.Now,
	}
}

// CheckoutRequest is the validated create input.
type CheckoutRequest struct {
	Items           []model.CheckoutItemInput
	ShippingAddress model.ShippingAddress
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
}

// CheckoutResult is what the caller needs to start the client-side payment.
type CheckoutResult struct {
	OrderID        string
	CreatedAt      time.Time
	Amount         int64
	Currency       string
	GatewayOrderID string
	GatewayKeyID   string
}

// Checkout creates a pending order for the principal. The pending write is
// durable before this returns, so a later confirmation can rely on the order
// existing.
func (s *CheckoutService) Checkout(ctx context.Context, principal identity.Principal, req CheckoutRequest) (*CheckoutResult, error) {
	if err := validateAddress(req.ShippingAddress); err != nil {
		return nil, err
	}

	lines, subtotal, err := s.Pricing.PriceCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// shipping and tax are reserved policy hooks, fixed at zero for now
	var shippingFee, tax int64
	total := subtotal + shippingFee + tax

	createdAt := s.now().UTC().Truncate(time.Millisecond)
	orderID := uuid.NewString()

	gatewayOrder, err := s.Gateway.CreateOrder(ctx, total, s.Currency, orderID)
	if err != nil {
		logger.Error().Err(err).Str("order_id", orderID).Msg("gateway order creation failed")
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	snapshot := &model.OrderSnapshot{
		UserID:          principal.ID,
		CreatedAt:       createdAt,
		OrderID:         orderID,
		Status:          model.OrderStatusProcessing,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMode:     "online",
		PaymentDetails:  "razorpay",
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		Tax:             tax,
		Total:           total,
		Currency:        s.Currency,
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		GatewayOrderID:  gatewayOrder.GatewayOrderID,
	}

	if err := s.Store.PutOrder(ctx, snapshot); err != nil {
		logger.Error().Err(err).Str("order_id", orderID).Msg("persisting pending order failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logger.Info().
		Str("order_id", orderID).
		Str("user_id", principal.ID).
		Bool("guest", principal.IsGuest).
		Int64("total", total).
		Msg("checkout session created")

	return &CheckoutResult{
		OrderID:        orderID,
		CreatedAt:      createdAt,
		Amount:         total,
		Currency:       s.Currency,
		GatewayOrderID: gatewayOrder.GatewayOrderID,
		GatewayKeyID:   s.Gateway.KeyID(),
	}, nil
}

// ListOrders returns the principal's orders, newest first. Guests cannot list
// orders; a guest identity is single-use and not revisitable.
func (s *CheckoutService) ListOrders(ctx context.Context, principal identity.Principal) ([]model.OrderSnapshot, error) {
	if principal.IsGuest || principal.ID == "" {
		return nil, ErrUnauthorized
	}
	orders, err := s.Store.ListOrdersByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return orders, nil
}

func validateAddress(a model.ShippingAddress) error {
	required := []string{
		a.UserLabel,
		a.PhoneNumber,
		a.SpecificAddress,
		a.Street,
		a.Area,
		a.Postcode,
		a.City,
		a.State,
		a.Country,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrInvalidAddress
		}
	}
	return nil
}
