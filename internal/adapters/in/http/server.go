// Package http exposes the order lifecycle operations over HTTP using echo.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	historyHandler      queries.GetOrderStatusHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	historyHandler queries.GetOrderStatusHistoryQueryHandler,
) *Server {
	return &Server{
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		historyHandler:      historyHandler,
	}
}

// RegisterRoutes attaches the server's routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/history", s.GetOrderStatusHistory)
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// StatusHistoryEntryResponse is one element of the history response.
type StatusHistoryEntryResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Notes     string `json:"notes"`
}

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromCode(req.Status)
	if err != nil {
		return badRequest(ctx, "unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStatusHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusHistoryEntryResponse, len(history))
	for i, entry := range history {
		response[i] = StatusHistoryEntryResponse{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Notes:     entry.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
