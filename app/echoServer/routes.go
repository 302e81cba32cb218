package echoServer

import (
	"net/http"

	"zoobackend/app/echoServer/controller/animal"
	"zoobackend/app/echoServer/controller/auth"
	"zoobackend/app/echoServer/controller/booking"
	"zoobackend/app/echoServer/controller/ticket"

	"github.com/labstack/echo/v4"
)

type C struct {
	Animal  *animal.Controller
	Ticket  *ticket.Controller
	Booking *booking.Controller
	Auth    *auth.Controller
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	api.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "Zoo Backend API is running",
		})
	})

	api.GET("/animals", c.Animal.List)
	api.GET("/animals/:id", c.Animal.Detail)
	api.POST("/animals", c.Animal.Create)
	api.PUT("/animals/:id", c.Animal.Update)
	api.DELETE("/animals/:id", c.Animal.Delete)

	api.GET("/tickets", c.Ticket.List)
	api.GET("/tickets/:id", c.Ticket.Detail)
	api.POST("/tickets", c.Ticket.Create)
	api.PUT("/tickets/:id", c.Ticket.Update)
	api.DELETE("/tickets/:id", c.Ticket.Delete)

	api.GET("/bookings", c.Booking.List)
	api.GET("/bookings/:id", c.Booking.Detail)
	api.POST("/bookings", c.Booking.Create)
	// Quote before :id so "quote" is not matched as an id.
	api.POST("/bookings/quote", c.Booking.Quote)
	api.PUT("/bookings/:id", c.Booking.Update)
	api.DELETE("/bookings/:id", c.Booking.Delete)

	api.POST("/auth/register", c.Auth.Register)
	api.POST("/auth/login", c.Auth.Login)
}
