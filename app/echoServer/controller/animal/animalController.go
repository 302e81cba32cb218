package animal

import (
	"log/slog"
	"net/http"

	animalsvc "zoobackend/service/animal"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc animalsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/animals
func (h *Controller) List(c echo.Context) error {
	animals, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("animal list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read animals data"})
	}
	return c.JSON(http.StatusOK, animals)
}

// GET /api/animals/:id
func (h *Controller) Detail(c echo.Context) error {
	a, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch animalsvc.Code(err) {
		case animalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Animal not found"})
		default:
			h.Log.Error("animal detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read animal data"})
		}
	}
	return c.JSON(http.StatusOK, a)
}

// POST /api/animals
func (h *Controller) Create(c echo.Context) error {
	var req animalsvc.CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(req); err != nil {
		h.Log.Warn("animal create validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	a, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("animal create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create animal"})
	}
	return c.JSON(http.StatusCreated, a)
}

// PUT /api/animals/:id
func (h *Controller) Update(c echo.Context) error {
	var p animalsvc.Patch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.V.Struct(p); err != nil {
		h.Log.Warn("animal update validation", "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Validation error"})
	}
	a, err := h.Svc.Update(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		switch animalsvc.Code(err) {
		case animalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Animal not found"})
		default:
			h.Log.Error("animal update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update animal"})
		}
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /api/animals/:id — responds with the removed record.
func (h *Controller) Delete(c echo.Context) error {
	a, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch animalsvc.Code(err) {
		case animalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Animal not found"})
		default:
			h.Log.Error("animal delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete animal"})
		}
	}
	return c.JSON(http.StatusOK, a)
}
