package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitclub/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) BookSession(ctx context.Context, memberID, trainerID, bookingID int) (*Session, error) {
	args := m.Called(ctx, memberID, trainerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockService) RescheduleSession(ctx context.Context, memberID, sessionID, newBookingID, newTrainerID int) (*Session, error) {
	args := m.Called(ctx, memberID, sessionID, newBookingID, newTrainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockService) ListMemberSessions(ctx context.Context, memberID int) ([]SessionWithDetails, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SessionWithDetails), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.POST("/sessions", h.BookSession)
	r.PUT("/sessions/:sessionID", h.RescheduleSession)
	r.GET("/members/:memberID/sessions", h.ListMemberSessions)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_BookSession(t *testing.T) {
	svc := new(MockService)
	svc.On("BookSession", mock.Anything, 5, 1, 9).Return(&Session{ID: 20, TrainerID: 1, MemberID: 5, BookingID: 9}, nil)

	resp := doJSON(setupRouter(svc), http.MethodPost, "/sessions", `{"member_id":5,"trainer_id":1,"booking_id":9}`)

	require.Equal(t, http.StatusCreated, resp.Code)
	var got Session
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 20, got.ID)
	svc.AssertExpectations(t)
}

func TestHandler_BookSession_Errors(t *testing.T) {
	const body = `{"member_id":5,"trainer_id":1,"booking_id":9}`

	tests := []struct {
		name       string
		body       string
		serviceErr error
		status     int
		code       string
	}{
		{"missing booking", `{"member_id":5,"trainer_id":1}`, nil, http.StatusBadRequest, ""},
		{"trainer busy", body, fmt.Errorf("%w: trainer 1 has session 20", apperror.ErrTrainerBusy), http.StatusConflict, "trainer_busy"},
		{"outside availability", body, apperror.ErrOutsideAvailability, http.StatusConflict, "outside_availability"},
		{"unknown booking", body, fmt.Errorf("booking 9: %w", apperror.ErrNotFound), http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.serviceErr != nil {
				svc.On("BookSession", mock.Anything, 5, 1, 9).Return(nil, tt.serviceErr)
			}

			resp := doJSON(setupRouter(svc), http.MethodPost, "/sessions", tt.body)
			assert.Equal(t, tt.status, resp.Code)

			if tt.code != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.Equal(t, tt.code, body["code"])
			}
		})
	}
}

func TestHandler_RescheduleSession(t *testing.T) {
	svc := new(MockService)
	svc.On("RescheduleSession", mock.Anything, 5, 20, 12, 0).Return(&Session{ID: 20, TrainerID: 1, MemberID: 5, BookingID: 12}, nil)
	svc.On("RescheduleSession", mock.Anything, 6, 20, 12, 0).Return(nil, apperror.ErrNotOwned)

	r := setupRouter(svc)

	resp := doJSON(r, http.MethodPut, "/sessions/20", `{"member_id":5,"booking_id":12}`)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(r, http.MethodPut, "/sessions/20", `{"member_id":6,"booking_id":12}`)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = doJSON(r, http.MethodPut, "/sessions/x", `{"member_id":5,"booking_id":12}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	svc.AssertExpectations(t)
}

func TestHandler_ListMemberSessions(t *testing.T) {
	svc := new(MockService)
	svc.On("ListMemberSessions", mock.Anything, 5).
		Return([]SessionWithDetails{{Session: Session{ID: 20}, TrainerName: "Jordan", RoomName: "Studio A"}}, nil)

	resp := doJSON(setupRouter(svc), http.MethodGet, "/members/5/sessions", "")

	require.Equal(t, http.StatusOK, resp.Code)
	var got []SessionWithDetails
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Jordan", got[0].TrainerName)
}
