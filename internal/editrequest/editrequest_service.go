package editrequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	editrequesterrors "github.com/ganeshsahu2020/SmileCastle/internal/editrequest/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/events"
	"github.com/ganeshsahu2020/SmileCastle/internal/ledger"
	"github.com/ganeshsahu2020/SmileCastle/internal/messaging/kafka"
	"github.com/ganeshsahu2020/SmileCastle/internal/punch"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	OutcomeApproved = "Approved"
	OutcomeDenied   = "Denied"
)

//go:generate mockgen -source=editrequest_service.go -destination=mock/editrequest_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitRequest) (EditRequestResponse, error)
	ListPending(ctx context.Context) ([]EditRequestResponse, error)
	ListMine(ctx context.Context, userID string) ([]EditRequestResponse, error)
	Approve(ctx context.Context, id string) (ResolveResponse, error)
	Deny(ctx context.Context, id string) (ResolveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	punchRepo  punch.Repository
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, punchRepo punch.Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("editrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("editrequest.service")
	}
	return &service{db: db, repo: repo, punchRepo: punchRepo, outboxRepo: outboxRepo, logger: l}
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (EditRequestResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return EditRequestResponse{}, editrequesterrors.ErrInvalidUserID
	}
	if !ledger.Kind(req.PunchType).Valid() {
		return EditRequestResponse{}, editrequesterrors.ErrInvalidPunchType
	}
	if strings.TrimSpace(req.Comment) == "" {
		return EditRequestResponse{}, editrequesterrors.ErrCommentRequired
	}
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return EditRequestResponse{}, editrequesterrors.ErrInvalidTimestamp
	}

	row := &EditRequest{
		ID:        uuid.New(),
		UserID:    userUUID,
		PunchType: req.PunchType,
		Timestamp: ts.UTC(),
		Comment:   strings.TrimSpace(req.Comment),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create edit request failed", zap.Error(err))
		return EditRequestResponse{}, err
	}

	s.logger.Info("edit request submitted",
		zap.String("edit_request_id", row.ID.String()),
		zap.String("user_id", userID),
		zap.String("punch_type", row.PunchType),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListPending(ctx context.Context) ([]EditRequestResponse, error) {
	rows, err := s.repo.FindAllPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]EditRequestResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, editrequesterrors.ErrInvalidUserID
	}
	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

// Approve materializes the claimed punch and retires the request in one
// transaction. The delete doubles as the resolution lock: if it affects zero
// rows another admin got there first and no punch is written.
func (s *service) Approve(ctx context.Context, id string) (ResolveResponse, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolveResponse{}, editrequesterrors.ErrAlreadyResolved
		}
		return ResolveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResolveResponse{}, err
	}
	defer tx.Rollback()

	affected, err := s.repo.WithTx(tx).DeletePending(ctx, id)
	if err != nil {
		return ResolveResponse{}, err
	}
	if affected == 0 {
		return ResolveResponse{}, editrequesterrors.ErrAlreadyResolved
	}

	row := &punch.Punch{
		ID:        uuid.New(),
		UserID:    req.UserID,
		PunchType: req.PunchType,
		Timestamp: req.Timestamp,
		Source:    events.PunchSourceEditRequest,
	}
	if err := s.punchRepo.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("materialize approved punch failed", zap.Error(err))
		return ResolveResponse{}, err
	}

	if err := s.enqueuePunchRecorded(ctx, tx, row); err != nil {
		s.logger.Error("enqueue punch_recorded failed", zap.Error(err))
		return ResolveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ResolveResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("edit request approved",
		zap.String("edit_request_id", id),
		zap.String("punch_id", row.ID.String()),
	)
	punchID := row.ID.String()
	return ResolveResponse{ID: id, Outcome: OutcomeApproved, PunchID: &punchID}, nil
}

func (s *service) Deny(ctx context.Context, id string) (ResolveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ResolveResponse{}, editrequesterrors.ErrAlreadyResolved
	}

	affected, err := s.repo.DeletePending(ctx, id)
	if err != nil {
		return ResolveResponse{}, err
	}
	if affected == 0 {
		return ResolveResponse{}, editrequesterrors.ErrAlreadyResolved
	}

	contextutil.GetLogger(ctx, s.logger).Info("edit request denied", zap.String("edit_request_id", id))
	return ResolveResponse{ID: id, Outcome: OutcomeDenied}, nil
}

func (s *service) enqueuePunchRecorded(ctx context.Context, tx *sql.Tx, row *punch.Punch) error {
	payload, err := json.Marshal(events.PunchRecordedEvent{
		EventType: "punch_recorded",
		PunchID:   row.ID.String(),
		UserID:    row.UserID.String(),
		PunchType: row.PunchType,
		Timestamp: row.Timestamp,
		Source:    row.Source,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "punch",
		AggregateID:   row.ID.String(),
		EventType:     "punch_recorded",
		Topic:         events.PunchRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(e EditRequest) EditRequestResponse {
	resp := EditRequestResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID.String(),
		PunchType: e.PunchType,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.Employee != nil {
		resp.EmployeeName = &e.Employee.Name
		resp.EmployeeCode = &e.Employee.EmployeeCode
	}
	return resp
}

func mapAll(rows []EditRequest) []EditRequestResponse {
	out := make([]EditRequestResponse, len(rows))
	for i, e := range rows {
		out[i] = mapToResponse(e)
	}
	return out
}
