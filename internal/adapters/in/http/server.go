package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP API for the order service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	upsertMenuItemsHandler commands.UpsertMenuItemsCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler

	// Query handlers
	getMenuHandler  queries.GetMenuQueryHandler
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	upsertMenuItemsHandler commands.UpsertMenuItemsCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		upsertMenuItemsHandler: upsertMenuItemsHandler,
		placeOrderHandler:      placeOrderHandler,
		getMenuHandler:         getMenuHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/menu", s.UpsertMenuItems)
	e.GET("/menu", s.GetMenu)
	e.POST("/orders", s.PlaceOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.GET("/health", s.Health)
}

// UpsertMenuRequest is the body of POST /menu.
type UpsertMenuRequest struct {
	Items []MenuItemRequest `json:"items"`
}

// MenuItemRequest is one proposed catalog entry in an upsert batch.
type MenuItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// MenuItemResponse is one catalog entry as served to clients.
type MenuItemResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// UpsertMenuResponse is the body of a successful POST /menu.
type UpsertMenuResponse struct {
	Message string             `json:"message"`
	Items   []MenuItemResponse `json:"items"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	Items        []int  `json:"items"`
	CustomerName string `json:"customerName"`
}

// PlaceOrderResponse is the body of a successful POST /orders.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
}

// OrderItemResponse is one order line in the resolved order view.
// Resolved reports whether the referenced catalog entry still exists;
// an unresolved line carries only the stale id.
type OrderItemResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Category string  `json:"category,omitempty"`
	Resolved bool    `json:"resolved"`
}

// OrderResponse is the body of a successful GET /orders/:id.
type OrderResponse struct {
	OrderID      int                 `json:"orderId"`
	Items        []OrderItemResponse `json:"items"`
	CustomerName string              `json:"customerName,omitempty"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpsertMenuItems handles POST /menu - adds or updates catalog entries.
func (s *Server) UpsertMenuItems(ctx echo.Context) error {
	var request UpsertMenuRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	candidates := make([]menu.Candidate, 0, len(request.Items))
	for _, item := range request.Items {
		category, err := menu.CategoryFromName(item.Category)
		if err != nil {
			return respondError(ctx, err)
		}

		candidate, err := menu.NewCandidate(item.Name, item.Price, category)
		if err != nil {
			return respondError(ctx, err)
		}
		candidates = append(candidates, candidate)
	}

	cmd, err := commands.NewUpsertMenuItemsCommand(candidates)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.upsertMenuItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := UpsertMenuResponse{
		Message: "Menu items added/updated",
		Items:   make([]MenuItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = MenuItemResponse{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Category: item.Category().String(),
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetMenu handles GET /menu - returns the full catalog in insertion order.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Category: item.Category,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders - places an order against the catalog.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewPlaceOrderCommand(request.Items, request.CustomerName)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		Message: "Order placed",
		OrderID: placed.ID(),
		Status:  placed.Status().String(),
	})
}

// GetOrder handles GET /orders/:id - returns one order with its items
// resolved against the current catalog. A non-numeric id matches no
// order and is reported the same way as a missing one.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	query := queries.NewGetOrderQuery(orderID)

	resolved, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		}
		return respondError(ctx, err)
	}

	response := OrderResponse{
		OrderID:      resolved.OrderID,
		Items:        make([]OrderItemResponse, len(resolved.Items)),
		CustomerName: resolved.CustomerName,
		Status:       resolved.Status,
		CreatedAt:    resolved.CreatedAt,
	}
	for i, item := range resolved.Items {
		response.Items[i] = OrderItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Category: item.Category,
			Resolved: item.Resolved,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps application errors to HTTP status codes: validation
// failures map to 400, missing objects to 404, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
