package reporterrors

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
)

var (
	ErrInvalidReportType = apperror.New(
		apperror.CodeInvalidInput,
		"report type must be daily, biweekly or custom",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be before or equal to end date",
		http.StatusBadRequest,
	)
)
