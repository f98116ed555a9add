// Package http exposes the order use cases over gin.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ekviron/orders-api/internal/orders/adapters/http/mapper"
	"github.com/ekviron/orders-api/internal/orders/ports"
	apierrors "github.com/ekviron/orders-api/internal/shared/errors"
)

const mediaTypeJSON = "application/json"

// OrderAPI wires the HTTP transport with the order service.
type OrderAPI struct {
	service ports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Get /api/v1/orders
// Return all existing orders.
func (api *OrderAPI) GetOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	apierrors.RespondJSON(c, http.StatusOK, mapper.FromDomainOrders(orders))
}

// Get /api/v1/orders/:id
// Return a single order.
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	apierrors.RespondJSON(c, http.StatusOK, mapper.FromDomainOrder(order))
}

// Post /api/v1/orders
// Validate and create a new order, returning it with assigned ids.
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	if ct := c.ContentType(); ct != mediaTypeJSON {
		apierrors.Respond(c, apierrors.NewUnsupportedMedia(ct, mediaTypeJSON))
		return
	}
	var payload mapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.NewMalformedJSON())
		return
	}
	if violations, subErrors := ValidateRequest(payload); len(violations) > 0 || len(subErrors) > 0 {
		apierrors.Respond(c, apierrors.NewValidation(violations, subErrors))
		return
	}
	created, err := api.service.CreateOrder(c.Request.Context(), mapper.ToDomainOrder(payload))
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	apierrors.RespondJSON(c, http.StatusOK, mapper.FromDomainOrder(created))
}

// Delete /api/v1/orders/:id
// Delete the order and, by cascade, its products.
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// parseIDParam reads an integer path parameter, responding with the
// translated error body when it is absent or not an integer.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	if raw == "" {
		apierrors.Respond(c, apierrors.NewMissingParameter(name))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.NewTypeMismatch(name, raw, "int64", err))
		return 0, false
	}
	return id, true
}
