package passwordreseterrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrUnknownEmployeeCode = apperror.New(
		apperror.CodeNotFound,
		"no employee with that code",
		http.StatusNotFound,
	)
	ErrTempPasswordRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a temporary password is required to approve a reset",
		http.StatusBadRequest,
	)
	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"reset request has already been resolved",
		http.StatusConflict,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"reset request not found",
		http.StatusNotFound,
	)
)
