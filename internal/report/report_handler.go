package report

import (
	"net/http"

	"github.com/ganeshsahu2020/SmileCastle/internal/shared/apperror"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindFilter(c *gin.Context) (GetReportFilterRequest, bool) {
	var req GetReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) Get(c *gin.Context) {
	req, ok := bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	req, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.ExportCSV(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="time-report.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	req, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.ExportPDF(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="time-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
