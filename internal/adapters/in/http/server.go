// Package http exposes the order management API over Echo. Handlers translate
// requests into commands and queries and map the error taxonomy onto HTTP
// status codes; raw internal errors never reach a response body.
package http

import (
	"context"
	"errors"
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	userIDHeader         = "X-User-Id"
	idempotencyKeyHeader = "Idempotency-Key"
)

// IdempotencyStore reserves idempotency keys for placement requests.
type IdempotencyStore interface {
	Key(userID kernel.UUID, idempotencyKey string) string
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Server wires the HTTP surface to the application's command and query handlers.
type Server struct {
	// Command handlers
	placeFromCartHandler commands.PlaceOrderFromCartCommandHandler
	placeByItemsHandler  commands.PlaceOrderByItemsCommandHandler
	placeByCartIDHandler commands.PlaceOrderByCartIDCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler

	// Query handlers
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler

	idempotency IdempotencyStore
}

// NewServer creates an HTTP server with the required handlers. The
// idempotency store may be nil, which disables duplicate detection.
func NewServer(
	placeFromCartHandler commands.PlaceOrderFromCartCommandHandler,
	placeByItemsHandler commands.PlaceOrderByItemsCommandHandler,
	placeByCartIDHandler commands.PlaceOrderByCartIDCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	idempotency IdempotencyStore,
) *Server {
	return &Server{
		placeFromCartHandler:   placeFromCartHandler,
		placeByItemsHandler:    placeByItemsHandler,
		placeByCartIDHandler:   placeByCartIDHandler,
		updateStatusHandler:    updateStatusHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrdersByUserHandler: getOrdersByUserHandler,
		idempotency:            idempotency,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/guest", s.PlaceGuestOrder)
	api.POST("/orders/by-cart", s.PlaceOrderByCart)
	api.GET("/orders", s.GetOrders)
	api.GET("/patients/:patientId/orders", s.GetPatientOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// PlaceOrder handles POST /api/v1/orders - places an order from the
// authenticated user's stored cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderFromCartCommand(userID, req.Address, req.Contact)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	release, err := s.reserveIdempotencyKey(ctx, userID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	placed, err := s.placeFromCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		release()
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// PlaceGuestOrder handles POST /api/v1/orders/guest - places an order from an
// explicit item list without a stored cart.
func (s *Server) PlaceGuestOrder(ctx echo.Context) error {
	var req GuestOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		medicineID, itemErr := kernel.UUIDFromString(reqItem.MedicineID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid medicine id")
		}

		item, itemErr := commands.NewOrderItem(medicineID, reqItem.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderByItemsCommand(userID, req.Address, req.Contact, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	release, err := s.reserveIdempotencyKey(ctx, userID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	placed, err := s.placeByItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		release()
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// PlaceOrderByCart handles POST /api/v1/orders/by-cart - places an order from
// a cart looked up by its own identifier.
func (s *Server) PlaceOrderByCart(ctx echo.Context) error {
	var req ByCartOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cartID, err := kernel.UUIDFromString(req.CartID)
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	cmd, err := commands.NewPlaceOrderByCartIDCommand(cartID, req.Address, req.Contact)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	release, err := s.reserveIdempotencyKey(ctx, cartID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	placed, err := s.placeByCartIDHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		release()
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// GetOrders handles GET /api/v1/orders - lists the authenticated user's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	return s.listOrders(ctx, userID)
}

// GetPatientOrders handles GET /api/v1/patients/:patientId/orders - lists a
// patient's orders for practitioner views.
func (s *Server) GetPatientOrders(ctx echo.Context) error {
	patientID, err := kernel.UUIDFromString(ctx.Param("patientId"))
	if err != nil {
		return badRequest(ctx, "Invalid patient id")
	}

	return s.listOrders(ctx, patientID)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(cancelled))
}

func (s *Server) listOrders(ctx echo.Context, userID kernel.UUID) error {
	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

// errDuplicateRequest marks a request whose idempotency key was already used.
var errDuplicateRequest = errors.New("duplicate request")

// reserveIdempotencyKey claims the request's Idempotency-Key, if one was
// sent. The returned release func frees the claim and is called when the
// guarded placement fails, so clients can retry with the same key.
func (s *Server) reserveIdempotencyKey(ctx echo.Context, scope kernel.UUID) (func(), error) {
	noop := func() {}

	key := ctx.Request().Header.Get(idempotencyKeyHeader)
	if key == "" || s.idempotency == nil {
		return noop, nil
	}

	reqCtx := ctx.Request().Context()
	storeKey := s.idempotency.Key(scope, key)

	ok, err := s.idempotency.Reserve(reqCtx, storeKey)
	if err != nil {
		return noop, err
	}
	if !ok {
		return noop, errDuplicateRequest
	}

	return func() {
		_ = s.idempotency.Release(reqCtx, storeKey)
	}, nil
}

func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errDuplicateRequest):
		return respond(ctx, http.StatusConflict, "Duplicate request")
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, medicine.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return respond(ctx, http.StatusBadRequest, err.Error())
	default:
		return respond(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
