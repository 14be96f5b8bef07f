// Package http exposes the application's use cases over an HTTP API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/application/usecases/queries"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/core/domain/model/user"
	"pickpoint/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID          string `json:"userId"`
	StationID       string `json:"stationId"`
	TimeSlotID      string `json:"timeSlotId"`
	ItemDescription string `json:"itemDescription"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	OrderNo         string          `json:"orderNo"`
	Status          string          `json:"status"`
	PickupCode      string          `json:"pickupCode"`
	ItemDescription string          `json:"itemDescription"`
	Amount          decimal.Decimal `json:"amount"`
	CourierID       *string         `json:"courierId,omitempty"`
	OrderTime       time.Time       `json:"orderTime"`
}

// ChangeOrderStatusRequest is the body of PUT /api/v1/orders/:orderNo/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateRechargeRequest is the body of POST /api/v1/recharges.
type CreateRechargeRequest struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
}

// RechargeResponse represents a recharge record in API responses.
type RechargeResponse struct {
	RechargeID     string          `json:"rechargeId"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	CreditsGranted int             `json:"creditsGranted"`
}

// ConfirmRechargeRequest is the body of POST /api/v1/recharges/confirm.
// It mirrors what the payment provider's callback carries: the payer, the
// paid amount and the provider's transaction reference.
type ConfirmRechargeRequest struct {
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	ExternalRef string          `json:"externalRef"`
}

// UserOrdersResponse is one page of a user's orders.
type UserOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
}

// BalanceResponse carries a user's credit balance.
type BalanceResponse struct {
	UserID        string `json:"userId"`
	CreditBalance int    `json:"creditBalance"`
}

// UnpaidResponse carries the unpaid order flag.
type UnpaidResponse struct {
	HasUnpaidOrder bool `json:"hasUnpaidOrder"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createRechargeHandler    commands.CreateRechargeCommandHandler
	confirmRechargeHandler   commands.ConfirmRechargeCommandHandler

	// Query handlers
	getUserOrdersHandler  queries.GetUserOrdersQueryHandler
	getUserBalanceHandler queries.GetUserBalanceQueryHandler
	hasUnpaidOrderHandler queries.HasUnpaidOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createRechargeHandler commands.CreateRechargeCommandHandler,
	confirmRechargeHandler commands.ConfirmRechargeCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getUserBalanceHandler queries.GetUserBalanceQueryHandler,
	hasUnpaidOrderHandler queries.HasUnpaidOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createRechargeHandler:    createRechargeHandler,
		confirmRechargeHandler:   confirmRechargeHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getUserBalanceHandler:    getUserBalanceHandler,
		hasUnpaidOrderHandler:    hasUnpaidOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderNo/status", s.ChangeOrderStatus)
	api.POST("/recharges", s.CreateRecharge)
	api.POST("/recharges/confirm", s.ConfirmRecharge)
	api.GET("/users/:userID/orders", s.GetUserOrders)
	api.GET("/users/:userID/balance", s.GetUserBalance)
	api.GET("/users/:userID/has-unpaid-order", s.HasUnpaidOrder)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - places a new pickup order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.NewUserID(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	stationID, err := kernel.UUIDFromString(req.StationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid station ID: "+err.Error())
	}

	timeSlotID, err := kernel.UUIDFromString(req.TimeSlotID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid time slot ID: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, stationID, timeSlotID, req.ItemDescription,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:orderNo/status - moves an
// order along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderNo, err := kernel.OrderNoFromString(ctx.Param("orderNo"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderNo, target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRecharge handles POST /api/v1/recharges - starts a top-up.
func (s *Server) CreateRecharge(ctx echo.Context) error {
	var req CreateRechargeRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.NewUserID(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	cmd, err := commands.NewCreateRechargeCommand(kernel.NewUUID(), userID, req.Amount)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid recharge data: "+err.Error())
	}

	record, err := s.createRechargeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, RechargeResponse{
		RechargeID:     record.ID().String(),
		Status:         record.Status().String(),
		Amount:         record.Amount(),
		CreditsGranted: record.CreditsGranted(),
	})
}

// ConfirmRecharge handles POST /api/v1/recharges/confirm - reconciles a
// payment provider callback. Replayed callbacks come back as 409.
func (s *Server) ConfirmRecharge(ctx echo.Context) error {
	var req ConfirmRechargeRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.NewUserID(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	cmd, err := commands.NewConfirmRechargeCommand(userID, req.Amount, req.ExternalRef)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmRechargeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/:userID/orders - lists a user's
// orders, newest first, optionally filtered by ?status= and paged with
// ?page= and ?pageSize=.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.NewUserID(ctx.Param("userID"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Unknown status: "+raw)
		}
		statusFilter = &status
	}

	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "pageSize", 0)

	query, err := queries.NewGetUserOrdersQuery(userID, statusFilter, page, pageSize)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	orders := make([]OrderResponse, len(result.Orders))
	for i, row := range result.Orders {
		orders[i] = OrderResponse{
			OrderNo:         row.OrderNo,
			Status:          row.Status,
			PickupCode:      row.PickupCode,
			ItemDescription: row.ItemDescription,
			Amount:          row.Amount,
			OrderTime:       row.OrderTime,
		}
		if row.CourierID != nil {
			courierID := row.CourierID.String()
			orders[i].CourierID = &courierID
		}
	}

	return ctx.JSON(http.StatusOK, UserOrdersResponse{
		Orders: orders,
		Total:  result.Total,
		Page:   query.Page(),
	})
}

// GetUserBalance handles GET /api/v1/users/:userID/balance.
func (s *Server) GetUserBalance(ctx echo.Context) error {
	userID, err := kernel.NewUserID(ctx.Param("userID"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	query, err := queries.NewGetUserBalanceQuery(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.getUserBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		UserID:        resp.UserID,
		CreditBalance: resp.CreditBalance,
	})
}

// HasUnpaidOrder handles GET /api/v1/users/:userID/has-unpaid-order.
func (s *Server) HasUnpaidOrder(ctx echo.Context) error {
	userID, err := kernel.NewUserID(ctx.Param("userID"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user ID: "+err.Error())
	}

	query, err := queries.NewHasUnpaidOrderQuery(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	unpaid, err := s.hasUnpaidOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, UnpaidResponse{HasUnpaidOrder: unpaid})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func orderResponse(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		OrderNo:         aggregate.OrderNo().String(),
		Status:          aggregate.Status().String(),
		PickupCode:      aggregate.PickupCode(),
		ItemDescription: aggregate.ItemDescription(),
		Amount:          aggregate.Amount(),
		OrderTime:       aggregate.OrderTime(),
	}
	if id := aggregate.Courier(); id != nil {
		courierID := id.String()
		resp.CourierID = &courierID
	}
	return resp
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// statusForError maps domain failures onto HTTP statuses: missing objects to
// 404, state machine violations and replays to 409, an empty balance to 402,
// exhausted order number retries to 503, everything else to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrInsufficientCredit):
		return http.StatusPaymentRequired
	case errors.Is(err, commands.ErrOrderNoExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, recharge.ErrAlreadyFinalized),
		errors.Is(err, user.ErrUserIsBlacklisted),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, recharge.ErrNoPlanForAmount),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
