package http

import (
	"errors"
	"net/http"

	"handmade/internal/core/application/usecases/commands"
	"handmade/internal/core/application/usecases/queries"
	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/services"
	"handmade/internal/generated/servers"
	"handmade/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// anonymousActor is recorded when a mutating request carries no X-Actor header.
const anonymousActor = "anonymous"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	createStatusChangeHandler commands.CreateStatusChangeCommandHandler
	updateStatusChangeHandler commands.UpdateStatusChangeCommandHandler
	deleteStatusChangeHandler commands.DeleteStatusChangeCommandHandler
	createPaymentHandler      commands.CreatePaymentCommandHandler

	// Query handlers
	getActiveOrdersHandler         queries.GetActiveOrdersQueryHandler
	getStatusChangesByPageHandler  queries.GetStatusChangesByPageQueryHandler
	getStatusChangesByOrderHandler queries.GetStatusChangesByOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createStatusChangeHandler commands.CreateStatusChangeCommandHandler,
	updateStatusChangeHandler commands.UpdateStatusChangeCommandHandler,
	deleteStatusChangeHandler commands.DeleteStatusChangeCommandHandler,
	createPaymentHandler commands.CreatePaymentCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStatusChangesByPageHandler queries.GetStatusChangesByPageQueryHandler,
	getStatusChangesByOrderHandler queries.GetStatusChangesByOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		createStatusChangeHandler:      createStatusChangeHandler,
		updateStatusChangeHandler:      updateStatusChangeHandler,
		deleteStatusChangeHandler:      deleteStatusChangeHandler,
		createPaymentHandler:           createPaymentHandler,
		getActiveOrdersHandler:         getActiveOrdersHandler,
		getStatusChangesByPageHandler:  getStatusChangesByPageHandler,
		getStatusChangesByOrderHandler: getStatusChangesByOrderHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newOrder.Id[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all non-deleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:          o.ID.Bytes(),
			Status:      o.Status,
			CreatedTime: o.CreatedTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatusChanges handles GET /api/v1/orders/{orderId}/statuschanges -
// retrieves the status-change history of one order in chronological order.
func (s *Server) GetOrderStatusChanges(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetStatusChangesByOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	history, err := s.getStatusChangesByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order has no status-change history")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve status changes")
	}

	response := make([]servers.StatusChange, len(history))
	for i, r := range history {
		response[i] = servers.StatusChange{
			Id:         r.ID.Bytes(),
			OrderId:    r.OrderID.Bytes(),
			Status:     r.Status,
			ChangeTime: r.ChangeTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePayment handles POST /api/v1/payments - registers a pending payment for an order.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var newPayment servers.NewPayment
	if err := ctx.Bind(&newPayment); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newPayment.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreatePaymentCommand(orderID, newPayment.Amount, newPayment.ExpirationTime)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.createPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.PaymentID().Bytes()})
}

// GetStatusChanges handles GET /api/v1/statuschanges - retrieves one ledger page.
func (s *Server) GetStatusChanges(ctx echo.Context, params servers.GetStatusChangesParams) error {
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	pageSize := 10
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetStatusChangesByPageQuery(page, pageSize)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	records, err := s.getStatusChangesByPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve status changes")
	}

	response := make([]servers.StatusChange, len(records))
	for i, r := range records {
		response[i] = servers.StatusChange{
			Id:         r.ID.Bytes(),
			OrderId:    r.OrderID.Bytes(),
			Status:     r.Status,
			ChangeTime: r.ChangeTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStatusChange handles POST /api/v1/statuschanges - appends a status-change record.
func (s *Server) CreateStatusChange(ctx echo.Context, params servers.CreateStatusChangeParams) error {
	var newStatusChange servers.NewStatusChange
	if err := ctx.Bind(&newStatusChange); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newStatusChange.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateStatusChangeCommand(
		orderID, newStatusChange.Status, newStatusChange.ChangeTime, actorOf(params.XActor))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status change data: "+err.Error())
	}

	if handleErr := s.createStatusChangeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.StatusChangeID().Bytes()})
}

// DeleteStatusChange handles DELETE /api/v1/statuschanges/{statusChangeId} -
// marks a record as deleted. Deletion is terminal.
func (s *Server) DeleteStatusChange(
	ctx echo.Context, statusChangeId openapi_types.UUID, params servers.DeleteStatusChangeParams,
) error {
	recordID, err := kernel.UUIDFromBytes(statusChangeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status change id: "+err.Error())
	}

	cmd, err := commands.NewDeleteStatusChangeCommand(recordID, actorOf(params.XActor))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if handleErr := s.deleteStatusChangeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatusChange handles PUT /api/v1/statuschanges/{statusChangeId} -
// rewrites the status and change time of an existing record.
func (s *Server) UpdateStatusChange(
	ctx echo.Context, statusChangeId openapi_types.UUID, params servers.UpdateStatusChangeParams,
) error {
	var update servers.StatusChangeUpdate
	if err := ctx.Bind(&update); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	recordID, err := kernel.UUIDFromBytes(statusChangeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status change id: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(update.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUpdateStatusChangeCommand(
		recordID, orderID, update.Status, update.ChangeTime, actorOf(params.XActor))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status change data: "+err.Error())
	}

	if handleErr := s.updateStatusChangeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// actorOf resolves the optional X-Actor header to a recorded actor name.
func actorOf(header *string) string {
	if header == nil || *header == "" {
		return anonymousActor
	}
	return *header
}

// commandErrorResponse maps command failures to HTTP status codes. Domain
// validation and ledger-ordering violations are client errors; missing
// aggregates are not-found; everything else is a server fault.
func commandErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrChangeTimeOutOfOrder),
		errors.Is(err, commands.ErrOrderIDCannotChange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
