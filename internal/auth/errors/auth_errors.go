package autherrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrInvalidStorePassword = apperror.New(
		apperror.CodeUnauthorized,
		"invalid store password",
		http.StatusUnauthorized,
	)
	ErrStoreGateRequired = apperror.New(
		apperror.CodeUnauthorized,
		"store gate token is required before employee login",
		http.StatusUnauthorized,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid employee code or password",
		http.StatusUnauthorized,
	)
	ErrInactiveAccount = apperror.New(
		apperror.CodeForbidden,
		"account is deactivated",
		http.StatusForbidden,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrOldPasswordIncorrect = apperror.New(
		apperror.CodeUnauthorized,
		"old password is incorrect",
		http.StatusUnauthorized,
	)
)
