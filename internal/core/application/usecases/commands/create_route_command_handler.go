package commands

import (
	"context"

	"hireboard/internal/core/domain/model/route"
)

// CreateRouteCommandHandler persists new board routes.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, command CreateRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := route.NewRoute(command.RouteID(), command.Name(), command.Color(), command.Capacity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
