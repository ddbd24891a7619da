package components

import (
	"go.uber.org/fx"

	"parkspot/internal/handler"
	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, spot *api.SpotHandler, res *api.ReservationHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Spot: spot, Reservation: res}
}
