package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadops/courseslot-backend/internal/repository"
	"github.com/acadops/courseslot-backend/internal/response"
	"github.com/acadops/courseslot-backend/internal/service"
)

// EntryHandler serves the single-row data entry endpoints. Both accept flat
// string-valued fields straight from the admin form.
type EntryHandler struct {
	catalogService *service.CatalogService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(catalogService *service.CatalogService) *EntryHandler {
	return &EntryHandler{catalogService: catalogService}
}

// CreateCourse godoc
// POST /api/singleDataEntryCourse
func (h *EntryHandler) CreateCourse(c *gin.Context) {
	var raw map[string]string
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	course, err := h.catalogService.CreateCourse(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCourse) {
			response.Fail(c, http.StatusConflict, response.ErrDuplicateCourse)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Course added successfully.",
		"course":  course,
	})
}

// SaveFaculty godoc
// POST /api/singleDataEntryFaculty
func (h *EntryHandler) SaveFaculty(c *gin.Context) {
	var raw map[string]string
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	faculty, err := h.catalogService.SaveFaculty(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmpIDRequired):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"empid": "empid is required"})
		case repository.IsUniqueViolation(err):
			response.Fail(c, http.StatusConflict, response.ErrEmployeeIDExists)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Faculty saved successfully.",
		"faculty": faculty,
	})
}
