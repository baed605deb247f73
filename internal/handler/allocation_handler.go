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

// AllocationHandler serves slot allocation and individual reversal.
type AllocationHandler struct {
	allocationService *service.AllocationService
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// AllocateSlot godoc
// POST /api/allocate-slot
func (h *AllocationHandler) AllocateSlot(c *gin.Context) {
	var req model.AllocateSlotRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	allocation, err := h.allocationService.Allocate(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSlotSelected):
			response.Fail(c, http.StatusBadRequest, response.ErrNoSlotSelected)
		case errors.Is(err, repository.ErrInsufficientSlots):
			response.Fail(c, http.StatusConflict, response.ErrInsufficientSlots)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message":    "Slot allocated successfully.",
		"allocation": allocation,
	})
}

// Deallocate godoc
// POST /delete-course
// POST /delete-course-individual
func (h *AllocationHandler) Deallocate(c *gin.Context) {
	var req model.DeallocateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	deleted, err := h.allocationService.Deallocate(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingReversalKey):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		case errors.Is(err, repository.ErrNoMatch):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Allocation deleted and slots restored.",
		"deleted": deleted,
	})
}
