package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/response"
	"github.com/acadops/courseslot-backend/internal/service"
)

// CatalogHandler serves the read endpoints of the catalog.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCourses godoc
// GET /courses
func (h *CatalogHandler) GetCourses(c *gin.Context) {
	courses, err := h.catalogService.ListCourses(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// GetFaculties godoc
// GET /faculties
func (h *CatalogHandler) GetFaculties(c *gin.Context) {
	faculties, err := h.catalogService.ListFaculties(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if faculties == nil {
		faculties = []model.Faculty{}
	}
	response.Success(c, http.StatusOK, gin.H{"faculties": faculties})
}

// GetFullTable godoc
// GET /full-table
func (h *CatalogHandler) GetFullTable(c *gin.Context) {
	allocations, err := h.catalogService.ListAllocations(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if allocations == nil {
		allocations = []model.Allocation{}
	}
	response.Success(c, http.StatusOK, gin.H{"allocations": allocations})
}

// GetAllocatedCourses godoc
// GET /allocated-courses?empid=<int>
func (h *CatalogHandler) GetAllocatedCourses(c *gin.Context) {
	empID, ok := empIDParam(c)
	if !ok {
		return
	}

	allocations, err := h.catalogService.AllocationsByEmpID(c.Request.Context(), empID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// A member with no allocations renders as an empty state, not a fault.
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"allocations": allocations})
}

// GetFaculty godoc
// GET /faculty?empid=<int>
func (h *CatalogHandler) GetFaculty(c *gin.Context) {
	empID, ok := empIDParam(c)
	if !ok {
		return
	}

	faculty, err := h.catalogService.FacultyByEmpID(c.Request.Context(), empID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// GetEachCourseAllocation godoc
// GET /each-course-allocation?code=<string>&stream=<string>
func (h *CatalogHandler) GetEachCourseAllocation(c *gin.Context) {
	code := c.Query("code")
	stream := c.Query("stream")
	if code == "" || stream == "" {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"detail": "code and stream query parameters are required"})
		return
	}

	views, err := h.catalogService.CourseAllocation(c.Request.Context(), code, stream)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if views == nil {
		views = []model.CourseAllocationView{}
	}
	response.Success(c, http.StatusOK, gin.H{"allocations": views})
}

// empIDParam validates the empid query parameter as an integer, failing the
// request with a 400 when it is absent or malformed. The employee id is kept
// in its string form downstream.
func empIDParam(c *gin.Context) (string, bool) {
	empID := c.Query("empid")
	if _, err := strconv.Atoi(empID); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return empID, true
}
