package passwordreset

import (
	"context"
	"database/sql"
	"testing"
	"time"

	employeepkg "github.com/ganeshsahu2020/SmileCastle/internal/employee"
	passwordreseterrors "github.com/ganeshsahu2020/SmileCastle/internal/passwordreset/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, r *ResetRequest) error
	findByIDFn func(ctx context.Context, id string) (*ResetRequest, error)
	findAllFn  func(ctx context.Context) ([]ResetRequest, error)
	resolveFn  func(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, r *ResetRequest) error {
	return f.createFn(ctx, r)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*ResetRequest, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]ResetRequest, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) Resolve(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error) {
	return f.resolveFn(ctx, id, status, resolvedBy, resolvedAt, issuedSecret)
}

type fakeEmployeeRepo struct {
	employeepkg.Repository
	findByCodeFn     func(ctx context.Context, code string) (*employeepkg.Employee, error)
	updatedPasswords map[string]string
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employeepkg.Repository { return f }
func (f *fakeEmployeeRepo) FindByCode(ctx context.Context, code string) (*employeepkg.Employee, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	if f.updatedPasswords == nil {
		f.updatedPasswords = map[string]string{}
	}
	f.updatedPasswords[id] = hashed
	return nil
}

func TestService_Submit(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	empID := uuid.New()
	empRepo := &fakeEmployeeRepo{
		findByCodeFn: func(ctx context.Context, code string) (*employeepkg.Employee, error) {
			if code != "E001" {
				return nil, gorm.ErrRecordNotFound
			}
			return &employeepkg.Employee{ID: empID, EmployeeCode: "E001"}, nil
		},
	}

	t.Run("unknown code", func(t *testing.T) {
		svc := NewService(db, &fakeRepo{}, empRepo)
		_, err := svc.Submit(context.Background(), SubmitResetRequest{
			EmployeeCode: "NOPE",
			ContactEmail: "nope@example.com",
		})
		assert.ErrorIs(t, err, passwordreseterrors.ErrUnknownEmployeeCode)
	})

	t.Run("creates pending request", func(t *testing.T) {
		var saved ResetRequest
		repo := &fakeRepo{
			createFn: func(ctx context.Context, r *ResetRequest) error { saved = *r; return nil },
		}
		svc := NewService(db, repo, empRepo)
		resp, err := svc.Submit(context.Background(), SubmitResetRequest{
			EmployeeCode: "E001",
			ContactEmail: "alice@example.com",
			Reason:       "  forgot it over the weekend  ",
		})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, resp.Status)
		assert.Equal(t, empID, saved.UserID)
		assert.Equal(t, "alice@example.com", saved.ContactEmail)
		assert.Equal(t, "forgot it over the weekend", saved.Reason)
		assert.Nil(t, saved.IssuedTempSecret)
	})
}

func TestService_Approve_SwapsPasswordInOneTransaction(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New()
	userID := uuid.New()
	adminID := uuid.New().String()

	var storedSecret *string
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*ResetRequest, error) {
		return &ResetRequest{ID: reqID, UserID: userID, Status: StatusPending}, nil
	}
	repo.resolveFn = func(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error) {
		assert.Equal(t, StatusApproved, status)
		assert.Equal(t, adminID, resolvedBy)
		storedSecret = issuedSecret
		return 1, nil
	}

	empRepo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), reqID.String(), adminID, ApproveRequest{TempPassword: "temp-secret-42"})
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, "temp-secret-42", resp.TempPassword)

	// the same hash lands on the request row and the employee record
	if assert.NotNil(t, storedSecret) {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*storedSecret), []byte("temp-secret-42")))
	}
	hashed := empRepo.updatedPasswords[userID.String()]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("temp-secret-42")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Approve_EmptyTempPassword(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEmployeeRepo{})
	_, err := svc.Approve(context.Background(), uuid.New().String(), uuid.New().String(), ApproveRequest{TempPassword: "   "})
	assert.ErrorIs(t, err, passwordreseterrors.ErrTempPasswordRequired)
}

func TestService_Approve_AlreadyResolvedLeavesPasswordAlone(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*ResetRequest, error) {
		return &ResetRequest{ID: reqID, UserID: uuid.New(), Status: StatusApproved}, nil
	}
	repo.resolveFn = func(ctx context.Context, id, status, resolvedBy string, resolvedAt time.Time, issuedSecret *string) (int64, error) {
		return 0, nil
	}

	empRepo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, empRepo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(context.Background(), reqID.String(), uuid.New().String(), ApproveRequest{TempPassword: "temp-secret-42"})
	assert.ErrorIs(t, err, passwordreseterrors.ErrAlreadyResolved)
	assert.Empty(t, empRepo.updatedPasswords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Reject(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	reqID := uuid.New()
	resolvedAt := time.Now().UTC()

	t.Run("pending request is rejected", func(t *testing.T) {
		repo := &fakeRepo{
			resolveFn: func(ctx context.Context, id, status, resolvedBy string, at time.Time, issuedSecret *string) (int64, error) {
				assert.Equal(t, StatusRejected, status)
				assert.Nil(t, issuedSecret)
				return 1, nil
			},
			findByIDFn: func(ctx context.Context, id string) (*ResetRequest, error) {
				return &ResetRequest{ID: reqID, UserID: uuid.New(), Status: StatusRejected, ResolvedAt: &resolvedAt}, nil
			},
		}
		svc := NewService(db, repo, &fakeEmployeeRepo{})
		resp, err := svc.Reject(context.Background(), reqID.String(), uuid.New().String())
		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, resp.Status)
		assert.NotNil(t, resp.ResolvedAt)
	})

	t.Run("already resolved", func(t *testing.T) {
		repo := &fakeRepo{
			resolveFn: func(ctx context.Context, id, status, resolvedBy string, at time.Time, issuedSecret *string) (int64, error) {
				return 0, nil
			},
		}
		svc := NewService(db, repo, &fakeEmployeeRepo{})
		_, err := svc.Reject(context.Background(), reqID.String(), uuid.New().String())
		assert.ErrorIs(t, err, passwordreseterrors.ErrAlreadyResolved)
	})
}
