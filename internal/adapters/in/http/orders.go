package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/orders - places an order for the calling buyer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromGoogle(body.ProductId)
	if err != nil {
		return badRequest(ctx, "Invalid product_id")
	}

	cmd, err := commands.NewPlaceOrderCommand(actorID, productID, body.Quantity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	s.recorder.OrderPlaced(outcomeOf(err))
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, placed.ID(), actorID)
}

// ListOrders handles GET /api/orders - lists the orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.respondError(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actorID, status, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := servers.OrderPage{
		Orders:     make([]servers.Order, len(result.Orders)),
		Pagination: toPagination(result.Pagination),
	}
	for i, view := range result.Orders {
		response.Orders[i] = toOrder(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{id} - returns one order if the caller may see it.
func (s *Server) GetOrder(ctx echo.Context, id servers.ID) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actorID)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status - moves an order forward.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.ID) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	_, err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	s.recorder.OrderTransitioned(status.String(), outcomeOf(err))
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actorID)
}

// respondWithOrder renders the joined view of an order the caller just touched.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID, actorID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(status, toOrder(view))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
