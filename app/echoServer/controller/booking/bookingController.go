package booking

import (
	"log/slog"
	"net/http"

	"zoobackend/model"
	bookingsvc "zoobackend/service/booking"
	"zoobackend/service/pricing"
	ticketsvc "zoobackend/service/ticket"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc     bookingsvc.Service
	Tickets ticketsvc.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// GET /api/bookings
func (h *Controller) List(c echo.Context) error {
	bookings, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read bookings data"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (h *Controller) Detail(c echo.Context) error {
	b, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		default:
			h.Log.Error("booking detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read booking data"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// POST /api/bookings — totalAmount arrives from the caller's quote and is
// stored verbatim.
func (h *Controller) Create(c echo.Context) error {
	var req bookingsvc.CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(req); err != nil {
		h.Log.Warn("booking create validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	b, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("booking create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create booking"})
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /api/bookings/:id
func (h *Controller) Update(c echo.Context) error {
	var p bookingsvc.Patch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(p); err != nil {
		h.Log.Warn("booking update validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	b, err := h.Svc.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		default:
			h.Log.Error("booking update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update booking"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /api/bookings/:id
func (h *Controller) Delete(c echo.Context) error {
	b, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		default:
			h.Log.Error("booking delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete booking"})
		}
	}
	return c.JSON(http.StatusOK, b)
}

// POST /api/bookings/quote — server-side price breakdown for a party on a
// ticket tier. Booking creation does not call this; the caller does.
func (h *Controller) Quote(c echo.Context) error {
	var req pricing.QuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(req); err != nil {
		h.Log.Warn("quote validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}

	t, err := h.Tickets.Get(c.Request().Context(), req.TicketID)
	if err != nil {
		switch ticketsvc.Code(err) {
		case ticketsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Ticket type not found"})
		default:
			h.Log.Error("quote ticket lookup", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read ticket data"})
		}
	}

	q, err := pricing.Quote(*t, model.Nationality(req.Nationality), req.Adults, req.Children)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	return c.JSON(http.StatusOK, q)
}
