package auth

import (
	"context"
	"database/sql"
	"testing"

	autherrors "github.com/ganeshsahu2020/SmileCastle/internal/auth/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employee.Repository
	findByCodeFn func(ctx context.Context, code string) (*employee.Employee, error)
	findByIDFn   func(ctx context.Context, id string) (*employee.Employee, error)
	updatedHash  string
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	f.updatedHash = hashed
	return nil
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestService_VerifyStoreGate(t *testing.T) {
	t.Setenv("STORE_PASSWORD", "open-sesame")
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeEmployeeRepo{})

	t.Run("wrong passphrase", func(t *testing.T) {
		_, err := svc.VerifyStoreGate("wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidStorePassword)
	})

	t.Run("correct passphrase issues store token", func(t *testing.T) {
		tokenStr, err := svc.VerifyStoreGate("open-sesame")
		assert.NoError(t, err)

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "store", claims["scope"])
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	empID := uuid.New()
	password := "hunter2hunter2"
	repo := &fakeEmployeeRepo{
		findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
			if code != "E001" {
				return nil, gorm.ErrRecordNotFound
			}
			return &employee.Employee{
				ID:           empID,
				EmployeeCode: "E001",
				Name:         "Alice",
				Role:         employee.RoleEmployee,
				Password:     hashOf(t, password),
				IsActive:     true,
			}, nil
		},
	}
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "NOPE", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "E001", "bad-password")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("success issues access and refresh tokens", func(t *testing.T) {
		access, refresh, resp, err := svc.Login(ctx, "E001", password)
		assert.NoError(t, err)
		assert.Equal(t, empID.String(), resp.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		parse := func(s string) jwt.MapClaims {
			token, err := jwt.Parse(s, func(token *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			assert.NoError(t, err)
			return token.Claims.(jwt.MapClaims)
		}
		assert.Equal(t, "access", parse(access)["scope"])
		assert.Equal(t, "refresh", parse(refresh)["scope"])
		assert.Equal(t, empID.String(), parse(access)["user_id"])
	})
}

func TestService_Login_InactiveAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	password := "hunter2hunter2"
	repo := &fakeEmployeeRepo{
		findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:       uuid.New(),
				Password: hashOf(t, password),
				IsActive: false,
			}, nil
		},
	}
	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "E001", password)
	assert.ErrorIs(t, err, autherrors.ErrInactiveAccount)
}

func TestService_RefreshToken_RejectsAccessScope(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	empID := uuid.New()
	repo := &fakeEmployeeRepo{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: empID, IsActive: true}, nil
		},
		findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:       empID,
				Password: hashOf(t, "hunter2hunter2"),
				IsActive: true,
			}, nil
		},
	}
	svc := NewService(repo)
	ctx := context.Background()

	access, refresh, _, err := svc.Login(ctx, "E001", "hunter2hunter2")
	assert.NoError(t, err)

	// an access token must not be usable as a refresh token
	_, _, _, err = svc.RefreshToken(ctx, access)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)

	newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, empID.String(), resp.ID)
}

func TestService_ChangePassword(t *testing.T) {
	empID := uuid.New()
	repo := &fakeEmployeeRepo{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: empID, Password: hashOf(t, "old-password")}, nil
		},
	}
	svc := NewService(repo)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, empID.String(), ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, autherrors.ErrOldPasswordIncorrect)
	assert.Empty(t, repo.updatedHash)

	err = svc.ChangePassword(ctx, empID.String(), ChangePasswordRequest{
		OldPassword: "old-password",
		NewPassword: "brand-new-pass",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte("brand-new-pass")))
}
