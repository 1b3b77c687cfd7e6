package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/model"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/repository"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/service"
)

// stubStore implements service.BookingStore in memory for handler tests.
type stubStore struct {
	mu       sync.Mutex
	bookings map[string]*model.Booking
}

func newStubStore() *stubStore { return &stubStore{bookings: make(map[string]*model.Booking)} }

func (s *stubStore) Create(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *stubStore) ListConfirmedByUser(_ context.Context, userID string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID && b.Status == model.BookingConfirmed {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubStore) ListByUser(_ context.Context, userID, status string, limit, offset int) ([]model.Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID && (status == "" || string(b.Status) == status) {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubStore) FindByIDForUser(_ context.Context, id, userID string) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok && b.UserID == userID {
		cp := *b
		return &cp, nil
	}
	return nil, repository.ErrBookingNotFound
}

func (s *stubStore) Cancel(_ context.Context, id, userID string) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, repository.ErrBookingNotFound
	}
	if b.Status == model.BookingCancelled {
		return nil, repository.ErrBookingCancelled
	}
	b.Status = model.BookingCancelled
	cp := *b
	return &cp, nil
}

func (s *stubStore) CancelAllByUser(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.bookings {
		if b.UserID == userID && b.Status == model.BookingConfirmed {
			b.Status = model.BookingCancelled
			n++
		}
	}
	return n, nil
}

// stubLocker always grants the guard.
type stubLocker struct{}

func (stubLocker) Acquire(context.Context, []string, string) error { return nil }
func (stubLocker) Release(context.Context, []string, string)       {}

func newTestContext(t *testing.T, method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func newSeatHandler() (*SeatHandler, *stubStore) {
	store := newStubStore()
	svc := service.NewBookingService(store, stubLocker{}, nil)
	return NewSeatHandler(svc, false), store
}

func TestGetGridAnonymous(t *testing.T) {
	h, _ := newSeatHandler()
	c, rec := newTestContext(t, http.MethodGet, "/api/seats/grid", "", "")

	require.NoError(t, h.GetGrid(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":""`)
	assert.Contains(t, rec.Body.String(), `"grid"`)
}

func TestBookCreatesBooking(t *testing.T) {
	h, store := newSeatHandler()
	c, rec := newTestContext(t, http.MethodPost, "/api/seats/book",
		`{"seatIds":["0-0","0-1"]}`, "alice")

	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":"2000"`)
	assert.Len(t, store.bookings, 1)
}

func TestBookRejectsMalformedSeatID(t *testing.T) {
	h, store := newSeatHandler()
	c, rec := newTestContext(t, http.MethodPost, "/api/seats/book",
		`{"seatIds":["zero-one"]}`, "alice")

	err := h.Book(c)
	if err != nil {
		// Struct validation surfaces as an HTTPError with status 400.
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	} else {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, store.bookings)
}

func TestBookConflictOnTakenSeat(t *testing.T) {
	h, _ := newSeatHandler()

	c, rec := newTestContext(t, http.MethodPost, "/api/seats/book",
		`{"seatIds":["2-2"]}`, "alice")
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newTestContext(t, http.MethodPost, "/api/seats/book",
		`{"seatIds":["2-2"]}`, "alice")
	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestValidateSelectionEndpoint(t *testing.T) {
	h, _ := newSeatHandler()

	c, rec := newTestContext(t, http.MethodPost, "/api/seats/select",
		`{"rowIndex":0,"seatIndex":0,"currentSelection":[]}`, "alice")
	require.NoError(t, h.ValidateSelection(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)

	c, rec = newTestContext(t, http.MethodPost, "/api/seats/select",
		`{"rowIndex":3,"seatIndex":7,"currentSelection":["3-5"]}`, "alice")
	require.NoError(t, h.ValidateSelection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "IsolationViolation")

	c, rec = newTestContext(t, http.MethodPost, "/api/seats/select",
		`{"rowIndex":12,"seatIndex":0,"currentSelection":[]}`, "alice")
	require.NoError(t, h.ValidateSelection(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "OutOfBounds")
}

func TestResetReportsCount(t *testing.T) {
	h, _ := newSeatHandler()

	c, rec := newTestContext(t, http.MethodPost, "/api/seats/book",
		`{"seatIds":["0-0","0-1"]}`, "alice")
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newTestContext(t, http.MethodPost, "/api/seats/reset", "", "alice")
	require.NoError(t, h.Reset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deletedCount":1`)
}
