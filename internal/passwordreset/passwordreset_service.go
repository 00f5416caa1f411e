package passwordreset

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	employeepkg "github.com/ganeshsahu2020/SmileCastle/internal/employee"
	passwordreseterrors "github.com/ganeshsahu2020/SmileCastle/internal/passwordreset/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=passwordreset_service.go -destination=mock/passwordreset_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitResetRequest) (ResetRequestResponse, error)
	List(ctx context.Context) ([]ResetRequestResponse, error)
	Approve(ctx context.Context, id, adminID string, req ApproveRequest) (ApproveResponse, error)
	Reject(ctx context.Context, id, adminID string) (ResetRequestResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employeepkg.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employeepkg.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("passwordreset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passwordreset.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

// Submit is reachable from the login screen (behind the store gate, before
// authentication), so it identifies the account by employee code.
func (s *service) Submit(ctx context.Context, req SubmitResetRequest) (ResetRequestResponse, error) {
	emp, err := s.employeeRepo.FindByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResetRequestResponse{}, passwordreseterrors.ErrUnknownEmployeeCode
		}
		return ResetRequestResponse{}, err
	}

	row := &ResetRequest{
		ID:           uuid.New(),
		UserID:       emp.ID,
		ContactEmail: req.ContactEmail,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create reset request failed", zap.Error(err))
		return ResetRequestResponse{}, err
	}

	s.logger.Info("password reset requested",
		zap.String("reset_request_id", row.ID.String()),
		zap.String("employee_code", req.EmployeeCode),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context) ([]ResetRequestResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ResetRequestResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out, nil
}

// Approve performs both writes, the request resolution and the employee's
// password swap, inside a single transaction. The admin supplies the
// temporary password; only its hash is stored, on the request row and on the
// employee record. If the conditional status update touches zero rows the
// request was resolved concurrently and the password is left untouched.
func (s *service) Approve(ctx context.Context, id, adminID string, req ApproveRequest) (ApproveResponse, error) {
	tempPassword := strings.TrimSpace(req.TempPassword)
	if tempPassword == "" {
		return ApproveResponse{}, passwordreseterrors.ErrTempPasswordRequired
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApproveResponse{}, passwordreseterrors.ErrRequestNotFound
		}
		return ApproveResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return ApproveResponse{}, err
	}
	issuedSecret := string(hashed)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApproveResponse{}, err
	}
	defer tx.Rollback()

	affected, err := s.repo.WithTx(tx).Resolve(ctx, id, StatusApproved, adminID, time.Now().UTC(), &issuedSecret)
	if err != nil {
		return ApproveResponse{}, err
	}
	if affected == 0 {
		return ApproveResponse{}, passwordreseterrors.ErrAlreadyResolved
	}

	if err := s.employeeRepo.WithTx(tx).UpdatePassword(ctx, row.UserID.String(), issuedSecret); err != nil {
		s.logger.Error("swap password for reset failed", zap.Error(err))
		return ApproveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ApproveResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("password reset approved",
		zap.String("reset_request_id", id),
		zap.String("resolved_by", adminID),
	)
	return ApproveResponse{ID: id, Status: StatusApproved, TempPassword: tempPassword}, nil
}

func (s *service) Reject(ctx context.Context, id, adminID string) (ResetRequestResponse, error) {
	affected, err := s.repo.Resolve(ctx, id, StatusRejected, adminID, time.Now().UTC(), nil)
	if err != nil {
		return ResetRequestResponse{}, err
	}
	if affected == 0 {
		return ResetRequestResponse{}, passwordreseterrors.ErrAlreadyResolved
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ResetRequestResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("password reset rejected",
		zap.String("reset_request_id", id),
		zap.String("resolved_by", adminID),
	)
	return mapToResponse(*req), nil
}

func mapToResponse(r ResetRequest) ResetRequestResponse {
	resp := ResetRequestResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		ContactEmail: r.ContactEmail,
		Reason:       r.Reason,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
	if r.ResolvedAt != nil {
		v := r.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &v
	}
	if r.Employee != nil {
		resp.EmployeeName = &r.Employee.Name
		resp.EmployeeCode = &r.Employee.EmployeeCode
	}
	return resp
}
