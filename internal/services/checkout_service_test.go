package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/identity"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

func newCheckoutService(store *fakeStore, gateway *fakeGateway) *CheckoutService {
	return NewCheckoutService(NewPricingService(testCatalog()), store, gateway, "INR")
}

func TestCheckout_HappyPath(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeGateway{secret: "s3cret", nextOrderID: "order_rzp_42"}
	svc := newCheckoutService(store, gateway)

	principal := identity.Principal{ID: "user-1"}
	result, err := svc.Checkout(context.Background(), principal, CheckoutRequest{
		Items:           []model.CheckoutItemInput{{ProductID: "P1", VariantID: "V1", Quantity: 2}},
		ShippingAddress: validAddress(),
		CustomerName:    "Asha Rao",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
	assert.Equal(t, int64(100000), result.Amount)
	assert.Equal(t, "INR", result.Currency)
	assert.Equal(t, "order_rzp_42", result.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", result.GatewayKeyID)

	stored, err := store.GetOrder(context.Background(), "user-1", result.CreatedAt)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.OrderID, stored.OrderID)
	assert.Equal(t, model.OrderStatusProcessing, stored.Status)
	assert.Equal(t, model.PaymentStatusPending, stored.PaymentStatus)
	assert.Equal(t, int64(100000), stored.Subtotal)
	assert.Equal(t, int64(0), stored.ShippingFee)
	assert.Equal(t, int64(0), stored.Tax)
	assert.Equal(t, stored.Subtotal+stored.ShippingFee+stored.Tax, stored.Total)
	assert.Equal(t, "order_rzp_42", stored.GatewayOrderID)
	assert.Equal(t, "Asha Rao", stored.CustomerName)
}

func TestCheckout_CreatedAtHasMillisecondResolution(t *testing.T) {
	store := newFakeStore()
	svc := newCheckoutService(store, &fakeGateway{secret: "s"})
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 589_793_238, time.UTC)
	}

	result, err := svc.Checkout(context.Background(), identity.Principal{ID: "u"}, CheckoutRequest{
		Items:           []model.CheckoutItemInput{{ProductID: "P1", VariantID: "V1", Quantity: 1}},
		ShippingAddress: validAddress(),
	})

	require.NoError(t, err)
	assert.Equal(t, 589_000_000, result.CreatedAt.Nanosecond())
}

func TestCheckout_InvalidAddress(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeGateway{secret: "s"}
	svc := newCheckoutService(store, gateway)

	addr := validAddress()
	addr.Postcode = "   "
	_, err := svc.Checkout(context.Background(), identity.Principal{ID: "u"}, CheckoutRequest{
		Items:           []model.CheckoutItemInput{{ProductID: "P1", VariantID: "V1", Quantity: 1}},
		ShippingAddress: addr,
	})

	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Zero(t, gateway.createCalls)
}

func TestCheckout_PricingFailureSkipsGateway(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeGateway{secret: "s"}
	svc := newCheckoutService(store, gateway)

	_, err := svc.Checkout(context.Background(), identity.Principal{ID: "u"}, CheckoutRequest{
		Items:           []model.CheckoutItemInput{{ProductID: "P2", VariantID: "V2", Quantity: 5}},
		ShippingAddress: validAddress(),
	})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Zero(t, gateway.createCalls)
	assert.Empty(t, store.orders)
}

func TestCheckout_GatewayFailurePersistsNothing(t *testing.T) {
	store := newFakeStore()
	gateway := &fakeGateway{secret: "s", createErr: errors.New("gateway timeout")}
	svc := newCheckoutService(store, gateway)

	_, err := svc.Checkout(context.Background(), identity.Principal{ID: "user-1"}, CheckoutRequest{
		Items:           []model.CheckoutItemInput{{ProductID: "P1", VariantID: "V1", Quantity: 1}},
		ShippingAddress: validAddress(),
	})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Empty(t, store.orders)
}

func TestListOrders_NewestFirst(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"o1", "o2", "o3"} {
		require.NoError(t, store.PutOrder(context.Background(), &model.OrderSnapshot{
			UserID:    "user-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			OrderID:   id,
		}))
	}
	require.NoError(t, store.PutOrder(context.Background(), &model.OrderSnapshot{
		UserID:    "someone-else",
		CreatedAt: base,
		OrderID:   "other",
	}))
	svc := newCheckoutService(store, &fakeGateway{secret: "s"})

	orders, err := svc.ListOrders(context.Background(), identity.Principal{ID: "user-1"})

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "o3", orders[0].OrderID)
	assert.Equal(t, "o2", orders[1].OrderID)
	assert.Equal(t, "o1", orders[2].OrderID)
}

func TestListOrders_GuestRejected(t *testing.T) {
	svc := newCheckoutService(newFakeStore(), &fakeGateway{secret: "s"})

	_, err := svc.ListOrders(context.Background(), identity.Principal{ID: "guest_abc", IsGuest: true})

	assert.ErrorIs(t, err, ErrUnauthorized)
}
