package services

// Category buckets errors for transport mapping: validation/not_found/
// unauthorized/conflict are caller problems, upstream/internal are server
// problems.
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryNotFound     Category = "not_found"
	CategoryUnauthorized Category = "unauthorized"
	CategoryConflict     Category = "conflict"
	CategoryUpstream     Category = "upstream"
	CategoryInternal     Category = "internal"
)

// Error carries a stable code and category alongside the user-facing message.
type Error struct {
	Code     string
	Category Category
	Message  string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrEmptyCart            = &Error{Code: "empty_cart", Category: CategoryValidation, Message: "cart is empty, nothing to checkout"}
	ErrProductNotFound      = &Error{Code: "product_not_found", Category: CategoryNotFound, Message: "product does not exist"}
	ErrVariantNotFound      = &Error{Code: "variant_not_found", Category: CategoryNotFound, Message: "variant does not exist"}
	ErrVariantMismatch      = &Error{Code: "variant_mismatch", Category: CategoryValidation, Message: "variant does not belong to the requested product"}
	ErrInvalidQuantity      = &Error{Code: "invalid_quantity", Category: CategoryValidation, Message: "requested quantity is not available"}
	ErrInvalidPrice         = &Error{Code: "invalid_price", Category: CategoryValidation, Message: "item has no valid price"}
	ErrInvalidAddress       = &Error{Code: "invalid_address", Category: CategoryValidation, Message: "shipping address is incomplete"}
	ErrGatewayUnavailable   = &Error{Code: "gateway_unavailable", Category: CategoryUpstream, Message: "payment gateway is unavailable"}
	ErrInvalidConfirmation  = &Error{Code: "invalid_confirmation", Category: CategoryValidation, Message: "payment confirmation is missing required fields"}
	ErrSignatureMismatch    = &Error{Code: "signature_mismatch", Category: CategoryConflict, Message: "payment signature verification failed"}
	ErrOrderNotFound        = &Error{Code: "order_not_found", Category: CategoryNotFound, Message: "order does not exist"}
	ErrGatewayOrderMismatch = &Error{Code: "gateway_order_mismatch", Category: CategoryConflict, Message: "confirmation does not match the order's payment attempt"}
	ErrUnauthorized         = &Error{Code: "unauthorized", Category: CategoryUnauthorized, Message: "authentication required"}
	ErrStorage              = &Error{Code: "storage_failure", Category: CategoryInternal, Message: "order storage failed"}
)
