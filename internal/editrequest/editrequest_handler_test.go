package editrequest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ganeshsahu2020/SmileCastle/internal/editrequest"
	editrequesterrors "github.com/ganeshsahu2020/SmileCastle/internal/editrequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	submitFn      func(ctx context.Context, userID string, req editrequest.SubmitRequest) (editrequest.EditRequestResponse, error)
	listPendingFn func(ctx context.Context) ([]editrequest.EditRequestResponse, error)
	listMineFn    func(ctx context.Context, userID string) ([]editrequest.EditRequestResponse, error)
	approveFn     func(ctx context.Context, id string) (editrequest.ResolveResponse, error)
	denyFn        func(ctx context.Context, id string) (editrequest.ResolveResponse, error)
}

func (f *fakeService) Submit(ctx context.Context, userID string, req editrequest.SubmitRequest) (editrequest.EditRequestResponse, error) {
	return f.submitFn(ctx, userID, req)
}
func (f *fakeService) ListPending(ctx context.Context) ([]editrequest.EditRequestResponse, error) {
	return f.listPendingFn(ctx)
}
func (f *fakeService) ListMine(ctx context.Context, userID string) ([]editrequest.EditRequestResponse, error) {
	return f.listMineFn(ctx, userID)
}
func (f *fakeService) Approve(ctx context.Context, id string) (editrequest.ResolveResponse, error) {
	return f.approveFn(ctx, id)
}
func (f *fakeService) Deny(ctx context.Context, id string) (editrequest.ResolveResponse, error) {
	return f.denyFn(ctx, id)
}

func TestHandler_SubmitAndApprove(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()
	reqID := uuid.New().String()

	svc := &fakeService{
		submitFn: func(ctx context.Context, uid string, req editrequest.SubmitRequest) (editrequest.EditRequestResponse, error) {
			assert.Equal(t, userID, uid)
			return editrequest.EditRequestResponse{ID: reqID, UserID: uid}, nil
		},
		approveFn: func(ctx context.Context, id string) (editrequest.ResolveResponse, error) {
			assert.Equal(t, reqID, id)
			return editrequest.ResolveResponse{ID: id, Outcome: editrequest.OutcomeApproved}, nil
		},
	}
	h := editrequest.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", userID)
	body := `{"punch_type":"OUT","timestamp":"2025-03-03T17:00:00Z","comment":"forgot to punch out"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/edit-requests", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: reqID}}
	c2.Request = httptest.NewRequest(http.MethodPost, "/edit-requests/"+reqID+"/approve", nil)
	h.Approve(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), editrequest.OutcomeApproved)
}

func TestHandler_Approve_AlreadyResolved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		approveFn: func(ctx context.Context, id string) (editrequest.ResolveResponse, error) {
			return editrequest.ResolveResponse{}, editrequesterrors.ErrAlreadyResolved
		},
	}
	h := editrequest.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodPost, "/edit-requests/x/approve", nil)
	h.Approve(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestHandler_Submit_MissingComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := editrequest.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"punch_type":"OUT","timestamp":"2025-03-03T17:00:00Z"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/edit-requests", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
