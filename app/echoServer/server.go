package echoServer

import (
	"log/slog"
	"path/filepath"

	"zoobackend/app/echoServer/controller/animal"
	"zoobackend/app/echoServer/controller/auth"
	"zoobackend/app/echoServer/controller/booking"
	"zoobackend/app/echoServer/controller/ticket"
	"zoobackend/app/echoServer/validation"
	"zoobackend/config"
	"zoobackend/model"
	animalrepo "zoobackend/repository/animal"
	bookingrepo "zoobackend/repository/booking"
	"zoobackend/repository/jsonstore"
	ticketrepo "zoobackend/repository/ticket"
	userrepo "zoobackend/repository/user"
	animalsvc "zoobackend/service/animal"
	authsvc "zoobackend/service/auth"
	bookingsvc "zoobackend/service/booking"
	ticketsvc "zoobackend/service/ticket"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// New wires stores, repositories, services and controllers into a ready
// echo instance. Both main and the end-to-end tests start servers through
// this.
func New(cfg config.App, log *slog.Logger) *echo.Echo {
	// stores: one JSON array file per resource; users is created lazily
	animalStore := jsonstore.New[model.Animal](filepath.Join(cfg.DataDir, "animals.json"))
	ticketStore := jsonstore.New[model.TicketType](filepath.Join(cfg.DataDir, "tickets.json"))
	bookingStore := jsonstore.New[model.Booking](filepath.Join(cfg.DataDir, "bookings.json"))
	userStore := jsonstore.NewLazy[model.User](filepath.Join(cfg.DataDir, "users.json"))

	// repos
	ar := animalrepo.New(animalStore)
	tr := ticketrepo.New(ticketStore)
	br := bookingrepo.New(bookingStore)
	ur := userrepo.New(userStore)

	// services
	as := animalsvc.New(ar)
	ts := ticketsvc.New(tr)
	bs := bookingsvc.New(br)
	us := authsvc.New(ur)

	// controllers
	v := validator.New()
	animalC := &animal.Controller{Svc: as, V: v, Log: log}
	ticketC := &ticket.Controller{Svc: ts, V: v, Log: log}
	bookingC := &booking.Controller{Svc: bs, Tickets: ts, V: v, Log: log}
	authC := &auth.Controller{Svc: us, V: v, Log: log}

	e := echo.New()
	e.HideBanner = true
	RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	Register(e, C{
		Animal:  animalC,
		Ticket:  ticketC,
		Booking: bookingC,
		Auth:    authC,
	})

	return e
}
