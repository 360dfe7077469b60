package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/middleware"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/services"
)

type confirmRequest struct {
	OrderID           string    `json:"orderId"`
	CreatedAt         time.Time `json:"createdAt"`
	GuestID           string    `json:"guestId"`
	RazorpayOrderID   string    `json:"razorpayOrderId"`
	RazorpayPaymentID string    `json:"razorpayPaymentId"`
	RazorpaySignature string    `json:"razorpaySignature"`
}

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {

	// public: the buyer's browser posts the gateway callback here, guests
	// included; the signature check is the gate, not auth
	g.POST("/checkout/confirm", func(c echo.Context) error {
		var req confirmRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": echo.Map{"code": "invalid_payload", "message": "request body is not valid JSON"},
			})
		}

		subject := ""
		if cl := middleware.TryGetClaimsFromAuthHeader(c); cl != nil {
			subject = cl.UserID
		}

		result, err := ps.ConfirmPayment(c.Request().Context(), subject, services.Confirmation{
			OrderID:          req.OrderID,
			CreatedAt:        req.CreatedAt,
			GuestID:          req.GuestID,
			GatewayOrderID:   req.RazorpayOrderID,
			GatewayPaymentID: req.RazorpayPaymentID,
			Signature:        req.RazorpaySignature,
		})
		if err != nil {
			return writeServiceError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"orderId":   result.OrderID,
			"createdAt": result.CreatedAt,
		})
	})
}
