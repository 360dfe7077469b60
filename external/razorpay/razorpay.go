package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

var ErrNotConfigured = errors.New("razorpay credentials not configured")

// Client wraps the Razorpay SDK behind the narrow surface checkout needs:
// creating a gateway order and verifying a payment signature locally.
type Client struct {
	keyID     string
	keySecret string
	sdk       *razorpay.Client
}

func NewClient(keyID, keySecret string) *Client {
	c := &Client{keyID: keyID, keySecret: keySecret}
	if keyID != "" && keySecret != "" {
		c.sdk = razorpay.NewClient(keyID, keySecret)
	}
	return c
}

// KeyID returns the public key id the browser widget needs.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates a gateway order for amount in minor currency units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	if c.sdk == nil {
		return nil, ErrNotConfigured
	}
	if amount <= 0 {
		return nil, fmt.Errorf("invalid gateway order amount %d", amount)
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := c.sdk.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("razorpay order create: response missing order id")
	}

	return &model.GatewayOrder{
		GatewayOrderID: id,
		Amount:         amount,
		Currency:       currency,
	}, nil
}

// VerifySignature checks a payment confirmation signature. The expected value
// is HMAC-SHA256 over "{orderID}|{paymentID}" with the key secret, hex
// encoded. A mismatch returns false, not an error; only missing credentials
// error out.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) (bool, error) {
	if c.keySecret == "" {
		return false, ErrNotConfigured
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
