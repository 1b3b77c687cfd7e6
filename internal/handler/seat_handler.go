package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/DevXSoni021/GreenStitch-Assignment/internal/middleware"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/seating"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/service"
)

// SeatHandler serves the grid and the selection/booking endpoints.
// debug widens error payloads with the underlying message; in
// production callers get a generic line and the detail stays in logs.
type SeatHandler struct {
	svc   *service.BookingService
	debug bool
}

// NewSeatHandler constructs the handler around the booking engine.
func NewSeatHandler(svc *service.BookingService, debug bool) *SeatHandler {
	return &SeatHandler{svc: svc, debug: debug}
}

type selectRequest struct {
	RowIndex         int      `json:"rowIndex"`
	SeatIndex        int      `json:"seatIndex"`
	CurrentSelection []string `json:"currentSelection" validate:"max=8,dive,seatid"`
}

type bookRequest struct {
	SeatIDs []string `json:"seatIds" validate:"required,min=1,max=8,dive,seatid"`
}

// GetGrid returns the caller's derived seat layout.  Anonymous callers
// get the pristine grid and an empty userId.
func (h *SeatHandler) GetGrid(c echo.Context) error {
	userID := mw.UserID(c)
	grid, err := h.svc.Grid(c.Request().Context(), userID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"grid": grid, "userId": userID})
}

// ValidateSelection checks one tentative seat pick against the gap rule
// and the caller's grid.  A rejection is a 400 naming the reason so the
// client can explain it inline.
func (h *SeatHandler) ValidateSelection(c echo.Context) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reason, err := h.svc.ValidateSelection(c.Request().Context(), mw.UserID(c),
		req.RowIndex, req.SeatIndex, req.CurrentSelection)
	if err != nil {
		return h.internal(c, err)
	}
	if reason != service.ReasonNone {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"valid":  false,
			"reason": string(reason),
			"seatId": seating.SeatID(req.RowIndex, req.SeatIndex),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"valid": true})
}

// Book creates a confirmed booking for the listed seats.
func (h *SeatHandler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Create(c.Request().Context(), mw.UserID(c), req.SeatIDs)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, echo.Map{
			"message": "booking confirmed",
			"booking": booking,
		})
	case errors.Is(err, service.ErrEmptySelection),
		errors.Is(err, service.ErrTooManySeats),
		errors.Is(err, service.ErrDuplicateSeat),
		errors.Is(err, seating.ErrInvalidSeatID):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrSeatUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrLockBusy):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":     "seats are being booked by another request, try again",
			"retryable": true,
		})
	default:
		return h.internal(c, err)
	}
}

// Reset cancels every confirmed booking of the caller and reports how
// many were released.
func (h *SeatHandler) Reset(c echo.Context) error {
	n, err := h.svc.ResetAll(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "all bookings cancelled",
		"deletedCount": n,
	})
}

func (h *SeatHandler) internal(c echo.Context, err error) error {
	c.Logger().Errorf("seat handler: %v", err)
	msg := "internal server error"
	if h.debug {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}
