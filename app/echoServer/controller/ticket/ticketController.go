package ticket

import (
	"log/slog"
	"net/http"

	ticketsvc "zoobackend/service/ticket"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ticketsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/tickets
func (h *Controller) List(c echo.Context) error {
	tickets, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("ticket list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read tickets data"})
	}
	return c.JSON(http.StatusOK, tickets)
}

// GET /api/tickets/:id
func (h *Controller) Detail(c echo.Context) error {
	t, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch ticketsvc.Code(err) {
		case ticketsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Ticket type not found"})
		default:
			h.Log.Error("ticket detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read ticket data"})
		}
	}
	return c.JSON(http.StatusOK, t)
}

// POST /api/tickets
func (h *Controller) Create(c echo.Context) error {
	var req ticketsvc.CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(req); err != nil {
		h.Log.Warn("ticket create validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	t, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("ticket create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create ticket type"})
	}
	return c.JSON(http.StatusCreated, t)
}

// PUT /api/tickets/:id
func (h *Controller) Update(c echo.Context) error {
	var p ticketsvc.Patch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(p); err != nil {
		h.Log.Warn("ticket update validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	t, err := h.Svc.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		switch ticketsvc.Code(err) {
		case ticketsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Ticket type not found"})
		default:
			h.Log.Error("ticket update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update ticket type"})
		}
	}
	return c.JSON(http.StatusOK, t)
}

// DELETE /api/tickets/:id
func (h *Controller) Delete(c echo.Context) error {
	t, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch ticketsvc.Code(err) {
		case ticketsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Ticket type not found"})
		default:
			h.Log.Error("ticket delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete ticket type"})
		}
	}
	return c.JSON(http.StatusOK, t)
}
