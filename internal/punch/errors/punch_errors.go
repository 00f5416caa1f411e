package puncherrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidPunchType = apperror.New(
		apperror.CodeInvalidInput,
		"punch type must be IN, OUT, BREAK_IN or BREAK_OUT",
		http.StatusBadRequest,
	)
	ErrPunchNotFound = apperror.New(
		apperror.CodeNotFound,
		"punch not found",
		http.StatusNotFound,
	)
)
