package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
)

// OrderRepository is the durable store of order snapshots. Rows are keyed by
// (user_id, created_at); order_id is a unique secondary identifier. After
// insert the only mutation is the guarded status update.
type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// PutOrder inserts a new snapshot. A plain INSERT, so a second order for the
// same principal in the same clock tick surfaces as a key conflict instead of
// overwriting.
func (r *OrderRepository) PutOrder(ctx context.Context, o *model.OrderSnapshot) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	address, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}

	q := `
		INSERT INTO orders
			(user_id, created_at, order_id, status, payment_status, payment_mode, payment_details,
			 subtotal, shipping_fee, tax, total, currency, lines, shipping_address,
			 customer_name, customer_email, customer_phone,
			 gateway_order_id, gateway_payment_id, gateway_signature)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err = r.DB.Exec(
		ctx, q,
		o.UserID, o.CreatedAt, o.OrderID, o.Status, o.PaymentStatus, o.PaymentMode, o.PaymentDetails,
		o.Subtotal, o.ShippingFee, o.Tax, o.Total, o.Currency, lines, address,
		o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.GatewayOrderID, o.GatewayPaymentID, o.GatewaySignature,
	)
	return err
}

// GetOrder returns the snapshot at (userID, createdAt) or (nil, nil) when
// absent.
func (r *OrderRepository) GetOrder(ctx context.Context, userID string, createdAt time.Time) (*model.OrderSnapshot, error) {
	q := `
		SELECT user_id, created_at, order_id, status, payment_status, payment_mode, payment_details,
		       subtotal, shipping_fee, tax, total, currency, lines, shipping_address,
		       customer_name, customer_email, customer_phone,
		       gateway_order_id, gateway_payment_id, gateway_signature
		FROM orders
		WHERE user_id=$1 AND created_at=$2
	`
	o, err := scanOrder(r.DB.QueryRow(ctx, q, userID, createdAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// ListOrdersByUser returns all snapshots for the user, newest first.
func (r *OrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]model.OrderSnapshot, error) {
	q := `
		SELECT user_id, created_at, order_id, status, payment_status, payment_mode, payment_details,
		       subtotal, shipping_fee, tax, total, currency, lines, shipping_address,
		       customer_name, customer_email, customer_phone,
		       gateway_order_id, gateway_payment_id, gateway_signature
		FROM orders
		WHERE user_id=$1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderSnapshot
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// UpdateOrderStatus applies the settlement fields to the row at
// (userID, createdAt), but only while the stored gateway order id still equals
// update.ExpectedGatewayOrderID. Re-applying the same update matches again and
// rewrites the same values, so retries are no-ops. Returns the number of rows
// touched.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, userID string, createdAt time.Time, update model.OrderStatusUpdate) (int64, error) {
	q := `
		UPDATE orders
		SET status=$3,
		    payment_status=$4,
		    gateway_payment_id=$5,
		    gateway_signature=$6
		WHERE user_id=$1 AND created_at=$2 AND gateway_order_id=$7
	`
	tag, err := r.DB.Exec(
		ctx, q,
		userID, createdAt,
		update.Status, update.PaymentStatus, update.GatewayPaymentID, update.GatewaySignature,
		update.ExpectedGatewayOrderID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanOrder(row pgx.Row) (*model.OrderSnapshot, error) {
	var o model.OrderSnapshot
	var lines, address []byte

	err := row.Scan(
		&o.UserID, &o.CreatedAt, &o.OrderID, &o.Status, &o.PaymentStatus, &o.PaymentMode, &o.PaymentDetails,
		&o.Subtotal, &o.ShippingFee, &o.Tax, &o.Total, &o.Currency, &lines, &address,
		&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.GatewayOrderID, &o.GatewayPaymentID, &o.GatewaySignature,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal order lines: %w", err)
	}
	if err := json.Unmarshal(address, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("unmarshal shipping address: %w", err)
	}
	return &o, nil
}
