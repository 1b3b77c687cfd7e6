package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	mw "github.com/DevXSoni021/GreenStitch-Assignment/internal/middleware"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/repository"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/service"
)

// BookingHandler serves the booking history endpoints.  All routes
// require authentication; lookups never reveal whether an id belongs
// to another user.
type BookingHandler struct {
	svc   *service.BookingService
	debug bool
}

// NewBookingHandler constructs the handler around the booking engine.
func NewBookingHandler(svc *service.BookingService, debug bool) *BookingHandler {
	return &BookingHandler{svc: svc, debug: debug}
}

// List returns the caller's bookings, newest first.  ?status filters on
// booking status; limit defaults to 50, offset to 0.
func (h *BookingHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	bookings, total, err := h.svc.List(c.Request().Context(), mw.UserID(c), status, limit, offset)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"bookings": bookings,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// Get returns one booking owned by the caller.
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.svc.Get(c.Request().Context(), c.Param("id"), mw.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

// Delete soft-cancels a booking.  Cancelling an already cancelled
// booking is a conflict so clients can detect the duplicate request.
func (h *BookingHandler) Delete(c echo.Context) error {
	booking, err := h.svc.Cancel(c.Request().Context(), c.Param("id"), mw.UserID(c))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{
			"message": "booking cancelled",
			"booking": booking,
		})
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, repository.ErrBookingCancelled):
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking already cancelled"})
	default:
		return h.internal(c, err)
	}
}

func (h *BookingHandler) internal(c echo.Context, err error) error {
	c.Logger().Errorf("booking handler: %v", err)
	msg := "internal server error"
	if h.debug {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
