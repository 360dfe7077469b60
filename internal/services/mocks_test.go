package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

// fakeStore implements OrderStore with the same key and guard semantics as
// the real repository.
type fakeStore struct {
	mu        sync.Mutex
	orders    map[string]*model.OrderSnapshot
	putErr    error
	getErr    error
	updateErr error
	listErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: make(map[string]*model.OrderSnapshot)}
}

func storeKey(userID string, createdAt time.Time) string {
	return userID + "|" + createdAt.UTC().Format(time.RFC3339Nano)
}

func (f *fakeStore) PutOrder(_ context.Context, o *model.OrderSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	cp := *o
	f.orders[storeKey(o.UserID, o.CreatedAt)] = &cp
	return nil
}

func (f *fakeStore) GetOrder(_ context.Context, userID string, createdAt time.Time) (*model.OrderSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	o, ok := f.orders[storeKey(userID, createdAt)]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeStore) ListOrdersByUser(_ context.Context, userID string) ([]model.OrderSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.OrderSnapshot
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) UpdateOrderStatus(_ context.Context, userID string, createdAt time.Time, update model.OrderStatusUpdate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	o, ok := f.orders[storeKey(userID, createdAt)]
	if !ok || o.GatewayOrderID != update.ExpectedGatewayOrderID {
		return 0, nil
	}
	o.Status = update.Status
	o.PaymentStatus = update.PaymentStatus
	o.GatewayPaymentID = update.GatewayPaymentID
	o.GatewaySignature = update.GatewaySignature
	return 1, nil
}

// fakeGateway implements PaymentGateway with real HMAC verification so
// signature tests exercise the same math as the adapter.
type fakeGateway struct {
	secret      string
	nextOrderID string
	createErr   error
	createCalls int
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := f.nextOrderID
	if id == "" {
		id = "order_fake_1"
	}
	return &model.GatewayOrder{GatewayOrderID: id, Amount: amount, Currency: currency}, nil
}

func (f *fakeGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) (bool, error) {
	return f.sign(gatewayOrderID, gatewayPaymentID) == signature, nil
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

func (f *fakeGateway) sign(gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(f.secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func validAddress() model.ShippingAddress {
	return model.ShippingAddress{
		UserLabel:       "Home",
		PhoneNumber:     "9876543210",
		SpecificAddress: "Flat 4B, Green Residency",
		Street:          "MG Road",
		Area:            "Indiranagar",
		Postcode:        "560038",
		City:            "Bengaluru",
		State:           "Karnataka",
		Country:         "India",
	}
}
