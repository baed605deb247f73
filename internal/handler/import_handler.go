package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/response"
	"github.com/acadops/courseslot-backend/internal/service"
	"github.com/acadops/courseslot-backend/internal/validator"
)

// ImportHandler serves the bulk CSV import endpoints. The rows arrive
// already parsed client-side as JSON objects keyed by column name.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ProcessCourseCSV godoc
// POST /api/process-csv
func (h *ImportHandler) ProcessCourseCSV(c *gin.Context) {
	var req model.ImportRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	inserted, err := h.importService.ImportCourses(c.Request.Context(), req.Data)
	if err != nil {
		h.failImport(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Course data imported successfully.",
		"inserted": inserted,
	})
}

// ProcessFacultyCSV godoc
// POST /api/process-Facultycsv
func (h *ImportHandler) ProcessFacultyCSV(c *gin.Context) {
	var req model.ImportRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	inserted, err := h.importService.ImportFaculties(c.Request.Context(), req.Data)
	if err != nil {
		h.failImport(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Faculty data imported successfully.",
		"inserted": inserted,
	})
}

// failImport translates import engine errors to response codes.
func (h *ImportHandler) failImport(c *gin.Context, err error) {
	var missing *service.MissingColumnsError
	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyBatch)
	case errors.As(err, &missing):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrMissingColumns,
			map[string]string{"columns": strings.Join(missing.Columns, ", ")})
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
