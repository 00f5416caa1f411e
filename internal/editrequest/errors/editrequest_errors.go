package editrequesterrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a comment explaining the correction is required",
		http.StatusBadRequest,
	)
	ErrInvalidPunchType = apperror.New(
		apperror.CodeInvalidInput,
		"punch type must be IN, OUT, BREAK_IN or BREAK_OUT",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"timestamp must be a valid RFC 3339 time",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	// ErrAlreadyResolved covers both a request resolved by another admin and an
	// id that never existed; the caller cannot tell the difference and the
	// remedy is the same, refresh the pending list.
	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"edit request has already been resolved",
		http.StatusConflict,
	)
)
