package editrequest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	editrequesterrors "github.com/ganeshsahu2020/SmileCastle/internal/editrequest/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/events"
	"github.com/ganeshsahu2020/SmileCastle/internal/messaging/kafka"
	"github.com/ganeshsahu2020/SmileCastle/internal/punch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn         func(tx *sql.Tx) Repository
	createFn         func(ctx context.Context, e *EditRequest) error
	findByIDFn       func(ctx context.Context, id string) (*EditRequest, error)
	findAllPendingFn func(ctx context.Context) ([]EditRequest, error)
	findAllByUserFn  func(ctx context.Context, userID string) ([]EditRequest, error)
	deletePendingFn  func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *EditRequest) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*EditRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAllPending(ctx context.Context) ([]EditRequest, error) {
	return f.findAllPendingFn(ctx)
}
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID string) ([]EditRequest, error) {
	return f.findAllByUserFn(ctx, userID)
}
func (f *fakeRepo) DeletePending(ctx context.Context, id string) (int64, error) {
	return f.deletePendingFn(ctx, id)
}

type fakePunchRepo struct {
	punch.Repository
	created []punch.Punch
}

func (f *fakePunchRepo) WithTx(tx *sql.Tx) punch.Repository { return f }
func (f *fakePunchRepo) Create(ctx context.Context, p *punch.Punch) error {
	f.created = append(f.created, *p)
	return nil
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, e kafka.OutboxEvent) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func TestService_Submit_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakePunchRepo{}, &fakeOutboxRepo{})
	userID := uuid.New().String()
	ctx := context.Background()

	_, err := svc.Submit(ctx, userID, SubmitRequest{PunchType: "IN", Timestamp: time.Now().Format(time.RFC3339), Comment: "   "})
	assert.ErrorIs(t, err, editrequesterrors.ErrCommentRequired)

	_, err = svc.Submit(ctx, userID, SubmitRequest{PunchType: "IN", Timestamp: "yesterday at nine", Comment: "forgot badge"})
	assert.ErrorIs(t, err, editrequesterrors.ErrInvalidTimestamp)

	_, err = svc.Submit(ctx, userID, SubmitRequest{PunchType: "LUNCH", Timestamp: time.Now().Format(time.RFC3339), Comment: "forgot badge"})
	assert.ErrorIs(t, err, editrequesterrors.ErrInvalidPunchType)
}

func TestService_Submit_StoresPendingRequest(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var saved EditRequest
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *EditRequest) error { saved = *e; return nil },
	}
	svc := NewService(db, repo, &fakePunchRepo{}, &fakeOutboxRepo{})

	userID := uuid.New().String()
	ts := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	resp, err := svc.Submit(context.Background(), userID, SubmitRequest{
		PunchType: "IN",
		Timestamp: ts.Format(time.RFC3339),
		Comment:   "  badge reader was down  ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "IN", saved.PunchType)
	assert.Equal(t, "badge reader was down", saved.Comment)
	assert.True(t, saved.Timestamp.Equal(ts))
	assert.Equal(t, userID, resp.UserID)
}

func TestService_Approve_MaterializesPunch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New()
	userID := uuid.New()
	claimed := time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC)

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*EditRequest, error) {
		return &EditRequest{ID: reqID, UserID: userID, PunchType: "OUT", Timestamp: claimed, Comment: "forgot to punch out"}, nil
	}
	repo.deletePendingFn = func(ctx context.Context, id string) (int64, error) { return 1, nil }

	punchRepo := &fakePunchRepo{}
	outbox := &fakeOutboxRepo{}
	svc := NewService(db, repo, punchRepo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), reqID.String())
	assert.NoError(t, err)
	assert.Equal(t, OutcomeApproved, resp.Outcome)
	assert.NotNil(t, resp.PunchID)

	assert.Len(t, punchRepo.created, 1)
	created := punchRepo.created[0]
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "OUT", created.PunchType)
	assert.True(t, created.Timestamp.Equal(claimed))
	assert.Equal(t, events.PunchSourceEditRequest, created.Source)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.PunchRecordedTopic, outbox.created[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Approve_AlreadyResolved(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*EditRequest, error) {
		return &EditRequest{ID: reqID, UserID: uuid.New(), PunchType: "OUT", Timestamp: time.Now()}, nil
	}
	// Another admin resolved it between the read and the delete.
	repo.deletePendingFn = func(ctx context.Context, id string) (int64, error) { return 0, nil }

	punchRepo := &fakePunchRepo{}
	svc := NewService(db, repo, punchRepo, &fakeOutboxRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), reqID.String())
	assert.ErrorIs(t, err, editrequesterrors.ErrAlreadyResolved)
	assert.Empty(t, punchRepo.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Deny(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New().String()

	t.Run("pending request is removed", func(t *testing.T) {
		repo := &fakeRepo{
			deletePendingFn: func(ctx context.Context, id string) (int64, error) { return 1, nil },
		}
		svc := NewService(db, repo, &fakePunchRepo{}, &fakeOutboxRepo{})
		resp, err := svc.Deny(context.Background(), reqID)
		assert.NoError(t, err)
		assert.Equal(t, OutcomeDenied, resp.Outcome)
		assert.Nil(t, resp.PunchID)
	})

	t.Run("already resolved", func(t *testing.T) {
		repo := &fakeRepo{
			deletePendingFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
		}
		svc := NewService(db, repo, &fakePunchRepo{}, &fakeOutboxRepo{})
		_, err := svc.Deny(context.Background(), reqID)
		assert.ErrorIs(t, err, editrequesterrors.ErrAlreadyResolved)
	})
}
