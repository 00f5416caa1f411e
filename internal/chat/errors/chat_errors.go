package chaterrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrEmptyMessage = apperror.New(
		apperror.CodeInvalidInput,
		"message content must not be empty",
		http.StatusBadRequest,
	)
	ErrInvalidRecipient = apperror.New(
		apperror.CodeInvalidInput,
		"invalid receiver id",
		http.StatusBadRequest,
	)
	ErrSelfMessage = apperror.New(
		apperror.CodeInvalidInput,
		"cannot send a direct message to yourself",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
