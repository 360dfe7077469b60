package services

import (
	"context"
	"fmt"
	"time"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/identity"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

// PaymentService reconciles gateway payment confirmations into stored orders.
// The only transition it applies is pending -> paid; re-applying it is a
// no-op, not an error.
type PaymentService struct {
	Store   OrderStore
	Gateway PaymentGateway
}

func NewPaymentService(store OrderStore, gateway PaymentGateway) *PaymentService {
	return &PaymentService{Store: store, Gateway: gateway}
}

// Confirmation is the caller-supplied proof that a gateway payment succeeded.
type Confirmation struct {
	OrderID          string
	CreatedAt        time.Time
	GuestID          string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// ConfirmResult identifies the settled order.
type ConfirmResult struct {
	OrderID   string
	CreatedAt time.Time
}

// ConfirmPayment validates the confirmation and settles the order. The
// signature is verified before any storage access so unverified input is
// never used as a lookup key beyond the (userId, createdAt) pair itself.
func (s *PaymentService) ConfirmPayment(ctx context.Context, subject string, conf Confirmation) (*ConfirmResult, error) {
	if conf.OrderID == "" || conf.CreatedAt.IsZero() ||
		conf.GatewayOrderID == "" || conf.GatewayPaymentID == "" || conf.Signature == "" {
		return nil, ErrInvalidConfirmation
	}

	ok, err := s.Gateway.VerifySignature(conf.GatewayOrderID, conf.GatewayPaymentID, conf.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if !ok {
		logger.Warn().
			Str("order_id", conf.OrderID).
			Str("gateway_order_id", conf.GatewayOrderID).
			Msg("payment confirmation with bad signature rejected")
		return nil, ErrSignatureMismatch
	}

	principal := identity.Resolve(subject, conf.GuestID)

	order, err := s.Store.GetOrder(ctx, principal.ID, conf.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	// the orderId double check defeats guessing against the timestamp key
	if order == nil || order.OrderID != conf.OrderID {
		return nil, ErrOrderNotFound
	}
	if order.GatewayOrderID != conf.GatewayOrderID {
		return nil, ErrGatewayOrderMismatch
	}

	affected, err := s.Store.UpdateOrderStatus(ctx, principal.ID, conf.CreatedAt, model.OrderStatusUpdate{
		Status:                 model.OrderStatusPlaced,
		PaymentStatus:          model.PaymentStatusPaid,
		GatewayPaymentID:       conf.GatewayPaymentID,
		GatewaySignature:       conf.Signature,
		ExpectedGatewayOrderID: conf.GatewayOrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if affected == 0 {
		// the stored gateway order id changed between read and write
		return nil, ErrGatewayOrderMismatch
	}

	logger.Info().
		Str("order_id", conf.OrderID).
		Str("user_id", principal.ID).
		Str("gateway_payment_id", conf.GatewayPaymentID).
		Msg("payment settled")

	return &ConfirmResult{OrderID: conf.OrderID, CreatedAt: conf.CreatedAt}, nil
}
