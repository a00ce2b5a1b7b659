package handlers

import (
	"errors"
	"log"
	"net/http"

	request "invoicer/internal/adapter/http/dto/request"
	response "invoicer/internal/adapter/http/dto/response"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"
	"invoicer/pkg"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles HTTP requests for the reminder policy settings.

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policy, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		log.Printf("[policy][handler] get failed err=%v", err)
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	var payload request.PolicyUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Update(c.Request.Context(), entities.ReminderPolicy{
		Enabled:                payload.Enabled,
		BeforeDueOffsets:       payload.BeforeDueOffsets,
		AfterDueOffsets:        payload.AfterDueOffsets,
		MaxRemindersPerInvoice: payload.MaxRemindersPerInvoice,
		BusinessHours: entities.BusinessHours{
			Enabled:     payload.BusinessHours.Enabled,
			StartMinute: payload.BusinessHours.StartMinute,
			EndMinute:   payload.BusinessHours.EndMinute,
		},
	})
	if err != nil {
		log.Printf("[policy][handler] update failed err=%v", err)
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(saved))
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBusinessHours), errors.Is(err, usecase.ErrInvalidMaxReminders):
		return pkg.NewDomainErrorSimple("INVALID_POLICY", "Invalid reminder policy", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
