package director

import (
	"net/http"

	"github.com/Triyambak-CA/client-dashboard/internal/shared/apperror"
	"github.com/Triyambak-CA/client-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		CompanyClientID:    uuidQuery(c, "company_client_id"),
		IndividualClientID: uuidQuery(c, "individual_client_id"),
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	companyID, individualID, ok := pairParams(c)
	if !ok {
		return
	}

	var req UpdateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), companyID, individualID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID, individualID, ok := pairParams(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), companyID, individualID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pairParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid companyId", nil)
		return uuid.Nil, uuid.Nil, false
	}
	individualID, err := uuid.Parse(c.Param("individualId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid individualId", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return companyID, individualID, true
}

func uuidQuery(c *gin.Context, name string) *uuid.UUID {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
