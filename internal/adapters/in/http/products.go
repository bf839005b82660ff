package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// UpdateProduct handles PUT /api/products/{id} - the owning farmer edits a listing.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.ID) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	productID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var body servers.UpdateProductJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	changes := commands.ProductChanges{
		Name:        body.Name,
		Category:    body.Category,
		Description: body.Description,
		Quantity:    body.Quantity,
	}
	if body.Price != nil {
		price, priceErr := kernel.MoneyFromString(*body.Price)
		if priceErr != nil {
			return s.respondError(ctx, priceErr)
		}
		changes.Price = &price
	}

	cmd, err := commands.NewUpdateProductCommand(productID, actorID, changes)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(updated))
}

// VerifyFarmer handles PUT /api/admin/users/{id}/verify - an admin grants or revokes
// a farmer's verification.
func (s *Server) VerifyFarmer(ctx echo.Context, id servers.ID) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	farmerID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	var body servers.VerifyFarmerJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyFarmerCommand(farmerID, actorID, body.Verified)
	if err != nil {
		return s.respondError(ctx, err)
	}

	farmer, err := s.handlers.VerifyFarmer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUser(farmer))
}
