package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

func (h *Handler) createViolation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		PlateNumber    string   `json:"plate_number" binding:"required"`
		DriverName     *string  `json:"driver_name"`
		OrdinanceLevel int      `json:"ordinance_level" binding:"required"`
		SmokeBelching  bool     `json:"smoke_belching"`
		ApprehendedAt  string   `json:"apprehended_at" binding:"required"`
		Location       *string  `json:"location"`
		FineAmount     *float64 `json:"fine_amount"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	violation, err := h.violationService.Create(c.Request.Context(), principal, service.ViolationInput{
		PlateNumber:    req.PlateNumber,
		DriverName:     req.DriverName,
		OrdinanceLevel: req.OrdinanceLevel,
		SmokeBelching:  req.SmokeBelching,
		ApprehendedAt:  req.ApprehendedAt,
		Location:       req.Location,
		FineAmount:     req.FineAmount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(violation))
}

func (h *Handler) listViolations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.ViolationListFilter{}

	if plate := strings.TrimSpace(c.Query("plate_number")); plate != "" {
		filter.PlateNumber = &plate
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		vs := model.ViolationStatus(strings.ToUpper(status))
		filter.Status = &vs
	}

	violations, err := h.violationService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(violations))
}

func (h *Handler) setViolationStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid violation id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	status := model.ViolationStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	violation, err := h.violationService.SetStatus(c.Request.Context(), principal, id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(violation))
}

func (h *Handler) deleteViolation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid violation id"))
		return
	}

	if err := h.violationService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type plantingRequest struct {
	RecordType   string  `json:"record_type" binding:"required"`
	Species      string  `json:"species" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	PlantedAt    string  `json:"planted_at" binding:"required"`
	MaintainedBy *string `json:"maintained_by"`
}

func (r plantingRequest) toInput() service.PlantingInput {
	return service.PlantingInput{
		RecordType:   r.RecordType,
		Species:      r.Species,
		Quantity:     r.Quantity,
		Location:     r.Location,
		PlantedAt:    r.PlantedAt,
		MaintainedBy: r.MaintainedBy,
	}
}

func (h *Handler) createPlanting(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req plantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.plantingService.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) listPlantings(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var recordType *model.PlantingType
	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		pt := model.PlantingType(strings.ToLower(raw))
		recordType = &pt
	}

	records, err := h.plantingService.List(c.Request.Context(), principal, recordType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) updatePlanting(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid planting record id"))
		return
	}

	var req plantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.plantingService.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deletePlanting(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid planting record id"))
		return
	}

	if err := h.plantingService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
