package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

type vehicleRequest struct {
	PlateNumber        string  `json:"plate_number"`
	ChassisNumber      *string `json:"chassis_number"`
	RegistrationNumber *string `json:"registration_number"`
	DriverName         string  `json:"driver_name" binding:"required"`
	OfficeName         string  `json:"office_name" binding:"required"`
	VehicleType        string  `json:"vehicle_type" binding:"required"`
	EngineType         string  `json:"engine_type" binding:"required"`
	Wheels             int     `json:"wheels" binding:"required"`
	ContactNumber      *string `json:"contact_number"`
	Remarks            *string `json:"remarks"`
}

func (r vehicleRequest) toInput() service.VehicleInput {
	return service.VehicleInput{
		PlateNumber:        r.PlateNumber,
		ChassisNumber:      r.ChassisNumber,
		RegistrationNumber: r.RegistrationNumber,
		DriverName:         r.DriverName,
		OfficeName:         r.OfficeName,
		VehicleType:        r.VehicleType,
		EngineType:         r.EngineType,
		Wheels:             r.Wheels,
		ContactNumber:      r.ContactNumber,
		Remarks:            r.Remarks,
	}
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) getVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.VehicleListFilter{}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filter.Search = &search
	}
	if office := strings.TrimSpace(c.Query("office")); office != "" {
		filter.OfficeName = &office
	}
	if engine := strings.TrimSpace(c.Query("engine_type")); engine != "" {
		et := model.EngineType(strings.ToLower(engine))
		filter.EngineType = &et
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		filter.Limit = limit
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	var update model.VehicleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), principal, id, update)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type syncQueueRequest struct {
	Deletes []string `json:"deletes"`
	Creates []struct {
		ClientID string         `json:"client_id" binding:"required"`
		Vehicle  vehicleRequest `json:"vehicle" binding:"required"`
	} `json:"creates"`
	Updates []struct {
		ID     string              `json:"id" binding:"required"`
		Update model.VehicleUpdate `json:"update"`
	} `json:"updates"`
}

func (r syncQueueRequest) toInput() service.SyncPushInput {
	input := service.SyncPushInput{Deletes: r.Deletes}
	for _, create := range r.Creates {
		input.Creates = append(input.Creates, service.PendingCreate{
			ClientID: create.ClientID,
			Input:    create.Vehicle.toInput(),
		})
	}
	for _, update := range r.Updates {
		input.Updates = append(input.Updates, service.PendingUpdate{
			ID:     update.ID,
			Update: update.Update,
		})
	}
	return input
}

func (h *Handler) syncVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req syncQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.syncService.Push(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) syncPreview(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req syncQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicles, err := h.syncService.Preview(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}
