package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/repository"
	"github.com/acadops/courseslot-backend/internal/response"
	"github.com/acadops/courseslot-backend/internal/service"
	"github.com/acadops/courseslot-backend/internal/validator"
)

// DeletionHandler serves the grouped cascade deletion endpoints.
type DeletionHandler struct {
	deletionService *service.DeletionService
}

// NewDeletionHandler creates a new DeletionHandler.
func NewDeletionHandler(deletionService *service.DeletionService) *DeletionHandler {
	return &DeletionHandler{deletionService: deletionService}
}

// DeleteGroupedFaculties godoc
// POST /delete-grouped-faculties
func (h *DeletionHandler) DeleteGroupedFaculties(c *gin.Context) {
	var req model.DeleteFacultiesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	deleted, err := h.deletionService.DeleteFaculties(c.Request.Context(), req.EmpIDs)
	if err != nil {
		h.failDeletion(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Selected faculties deleted successfully.",
		"deleted": deleted,
	})
}

// DeleteGroupedCourses godoc
// POST /delete-grouped-courses
func (h *DeletionHandler) DeleteGroupedCourses(c *gin.Context) {
	var req model.DeleteCoursesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	deleted, err := h.deletionService.DeleteCourses(c.Request.Context(), req.IDs)
	if err != nil {
		h.failDeletion(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Selected courses deleted successfully.",
		"deleted": deleted,
	})
}

func (h *DeletionHandler) failDeletion(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNoMatch) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
