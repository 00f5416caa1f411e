package punch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ganeshsahu2020/SmileCastle/internal/punch"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	punchFn      func(ctx context.Context, userID string, req punch.PunchRequest) (punch.PunchResponse, error)
	statusFn     func(ctx context.Context, userID string) (punch.StatusResponse, error)
	historyFn    func(ctx context.Context, userID string) (punch.HistoryResponse, error)
	historyAllFn func(ctx context.Context) (punch.HistoryResponse, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeService) Punch(ctx context.Context, userID string, req punch.PunchRequest) (punch.PunchResponse, error) {
	return f.punchFn(ctx, userID, req)
}
func (f *fakeService) Status(ctx context.Context, userID string) (punch.StatusResponse, error) {
	return f.statusFn(ctx, userID)
}
func (f *fakeService) History(ctx context.Context, userID string) (punch.HistoryResponse, error) {
	return f.historyFn(ctx, userID)
}
func (f *fakeService) HistoryAll(ctx context.Context) (punch.HistoryResponse, error) {
	return f.historyAllFn(ctx)
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func TestHandler_PunchAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		punchFn: func(ctx context.Context, uid string, req punch.PunchRequest) (punch.PunchResponse, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "IN", req.PunchType)
			return punch.PunchResponse{ID: uuid.New().String(), UserID: uid, PunchType: req.PunchType}, nil
		},
		statusFn: func(ctx context.Context, uid string) (punch.StatusResponse, error) {
			return punch.StatusResponse{Status: punch.StatusClockedIn}, nil
		},
	}

	h := punch.NewHandler(svc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/punches", strings.NewReader(`{"punch_type":"IN"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Punch(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("user_id_validated", userID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/punches/status", nil)
	h.Status(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), punch.StatusClockedIn)
}

func TestHandler_Punch_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := punch.NewHandler(&fakeService{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/punches", strings.NewReader(`{"punch_type":"NAP"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Punch(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		historyFn: func(ctx context.Context, uid string) (punch.HistoryResponse, error) {
			return punch.HistoryResponse{Years: []punch.YearGroup{{Year: 2025}}}, nil
		},
	}
	h := punch.NewHandler(svc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/punches/history", nil)
	h.History(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025")
}
