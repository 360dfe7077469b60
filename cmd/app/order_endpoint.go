package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/identity"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/middleware"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/model"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/services"
)

type checkoutRequest struct {
	Items           []model.CheckoutItemInput `json:"items"`
	ShippingAddress model.ShippingAddress     `json:"shippingAddress"`
	CustomerName    string                    `json:"customerName"`
	CustomerEmail   string                    `json:"customerEmail"`
	CustomerPhone   string                    `json:"customerPhone"`
	GuestID         string                    `json:"guestId"`
}

type checkoutResponse struct {
	OrderID        string    `json:"orderId"`
	CreatedAt      time.Time `json:"createdAt"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	GatewayOrderID string    `json:"gatewayOrderId"`
	GatewayKeyID   string    `json:"gatewayKeyId"`
	IsGuest        bool      `json:"isGuest,omitempty"`
	GuestID        string    `json:"guestId,omitempty"`
}

func registerOrderRoutes(g *echo.Group, cs *services.CheckoutService) {

	// checkout accepts both authenticated users and guests, so auth here is
	// optional rather than enforced by middleware
	g.POST("/checkout", func(c echo.Context) error {
		var req checkoutRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": echo.Map{"code": "invalid_payload", "message": "request body is not valid JSON"},
			})
		}

		subject := ""
		if cl := middleware.TryGetClaimsFromAuthHeader(c); cl != nil {
			subject = cl.UserID
		}
		principal := identity.Resolve(subject, req.GuestID)

		result, err := cs.Checkout(c.Request().Context(), principal, services.CheckoutRequest{
			Items:           req.Items,
			ShippingAddress: req.ShippingAddress,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
		})
		if err != nil {
			return writeServiceError(c, err)
		}

		resp := checkoutResponse{
			OrderID:        result.OrderID,
			CreatedAt:      result.CreatedAt,
			Amount:         result.Amount,
			Currency:       result.Currency,
			GatewayOrderID: result.GatewayOrderID,
			GatewayKeyID:   result.GatewayKeyID,
		}
		if principal.IsGuest {
			resp.IsGuest = true
			resp.GuestID = principal.ID
		}
		return c.JSON(http.StatusCreated, resp)
	})

	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if cl == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": echo.Map{"code": "unauthorized", "message": "authentication required"},
			})
		}

		orders, err := cs.ListOrders(c.Request().Context(), identity.Principal{ID: cl.UserID})
		if err != nil {
			return writeServiceError(c, err)
		}
		if orders == nil {
			orders = []model.OrderSnapshot{}
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	})
}
