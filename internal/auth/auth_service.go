package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"time"

	autherrors "github.com/ganeshsahu2020/SmileCastle/internal/auth/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	gateTokenTTL    = 12 * time.Hour
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// VerifyStoreGate checks the shared store passphrase and issues the gate
	// token the login screen needs.
	VerifyStoreGate(storePassword string) (gateToken string, err error)

	Login(ctx context.Context, employeeCode, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employeeRepo: employeeRepo, logger: l}
}

func (s *service) VerifyStoreGate(storePassword string) (string, error) {
	expected := os.Getenv("STORE_PASSWORD")
	if expected == "" || subtle.ConstantTimeCompare([]byte(storePassword), []byte(expected)) != 1 {
		s.logger.Warn("store gate rejected")
		return "", autherrors.ErrInvalidStorePassword
	}

	token, err := generateToken(jwt.MapClaims{"scope": "store"}, gateTokenTTL)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	s.logger.Info("store gate opened")
	return token, nil
}

func (s *service) Login(ctx context.Context, employeeCode, password string) (string, string, AuthResponse, error) {
	emp, err := s.employeeRepo.FindByCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", "", AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrInactiveAccount
	}

	accessToken, err := s.sessionToken(emp, "access", accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.sessionToken(emp, "refresh", refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", emp.ID.String()),
		zap.String("employee_code", emp.EmployeeCode),
	)
	return accessToken, refreshToken, mapToAuthResponse(emp), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	if scope, _ := claims["scope"].(string); scope != "refresh" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	if _, err := uuid.Parse(userIDStr); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	emp, err := s.employeeRepo.FindByID(ctx, userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !emp.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrInactiveAccount
	}

	newAccessToken, err := s.sessionToken(emp, "access", accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.sessionToken(emp, "refresh", refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToAuthResponse(emp), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	emp, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToAuthResponse(emp)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if _, err := uuid.Parse(userID); err != nil {
		return autherrors.ErrInvalidUserID
	}

	emp, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrOldPasswordIncorrect
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		s.logger.Error("change password persist failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("change password success", zap.String("user_id", userID))
	return nil
}

func (s *service) sessionToken(emp *employee.Employee, scope string, expiry time.Duration) (string, error) {
	return generateToken(jwt.MapClaims{
		"scope":   scope,
		"user_id": emp.ID.String(),
		"role":    emp.Role,
		"name":    emp.Name,
	}, expiry)
}

func generateToken(claims jwt.MapClaims, expiry time.Duration) (string, error) {
	claims["exp"] = time.Now().Add(expiry).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(emp *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:           emp.ID.String(),
		EmployeeCode: emp.EmployeeCode,
		Email:        emp.Email,
		Name:         emp.Name,
		Role:         emp.Role,
	}
}
