package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

func (h *Handler) createTest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		VehicleID        string   `json:"vehicle_id" binding:"required"`
		TestDate         string   `json:"test_date" binding:"required"`
		Quarter          int      `json:"quarter" binding:"required"`
		Year             int      `json:"year" binding:"required"`
		Result           bool     `json:"result"`
		COLevel          *float64 `json:"co_level"`
		HCLevel          *float64 `json:"hc_level"`
		OpacimeterResult *float64 `json:"opacimeter_result"`
		Technician       *string  `json:"technician"`
		TestingCenter    *string  `json:"testing_center"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	test, err := h.testService.Create(c.Request.Context(), principal, service.EmissionTestInput{
		VehicleID:        req.VehicleID,
		TestDate:         req.TestDate,
		Quarter:          req.Quarter,
		Year:             req.Year,
		Result:           req.Result,
		COLevel:          req.COLevel,
		HCLevel:          req.HCLevel,
		OpacimeterResult: req.OpacimeterResult,
		Technician:       req.Technician,
		TestingCenter:    req.TestingCenter,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(test))
}

func (h *Handler) listTests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.EmissionTestListFilter{}

	year, ok := optionalIntQuery(c, "year")
	if !ok {
		return
	}
	filter.Year = year

	quarter, ok := optionalIntQuery(c, "quarter")
	if !ok {
		return
	}
	filter.Quarter = quarter

	if raw := strings.TrimSpace(c.Query("vehicle_id")); raw != "" {
		vehicleID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
			return
		}
		filter.VehicleID = &vehicleID
	}

	tests, err := h.testService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(tests))
}

func (h *Handler) updateTest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid test id"))
		return
	}

	var req struct {
		TestDate         *string  `json:"test_date"`
		Quarter          *int     `json:"quarter"`
		Year             *int     `json:"year"`
		Result           *bool    `json:"result"`
		COLevel          *float64 `json:"co_level"`
		HCLevel          *float64 `json:"hc_level"`
		OpacimeterResult *float64 `json:"opacimeter_result"`
		Technician       *string  `json:"technician"`
		TestingCenter    *string  `json:"testing_center"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	test, err := h.testService.Update(c.Request.Context(), principal, id, service.EmissionTestUpdate{
		TestDate:         req.TestDate,
		Quarter:          req.Quarter,
		Year:             req.Year,
		Result:           req.Result,
		COLevel:          req.COLevel,
		HCLevel:          req.HCLevel,
		OpacimeterResult: req.OpacimeterResult,
		Technician:       req.Technician,
		TestingCenter:    req.TestingCenter,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(test))
}

func (h *Handler) deleteTest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid test id"))
		return
	}

	if err := h.testService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) createSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Year              int     `json:"year" binding:"required"`
		Quarter           int     `json:"quarter" binding:"required"`
		AssignedPersonnel string  `json:"assigned_personnel" binding:"required"`
		Location          string  `json:"location" binding:"required"`
		ConductedOn       *string `json:"conducted_on"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), principal, service.ScheduleInput{
		Year:              req.Year,
		Quarter:           req.Quarter,
		AssignedPersonnel: req.AssignedPersonnel,
		Location:          req.Location,
		ConductedOn:       req.ConductedOn,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(schedule))
}

func (h *Handler) listSchedules(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	year, ok := optionalIntQuery(c, "year")
	if !ok {
		return
	}
	quarter, ok := optionalIntQuery(c, "quarter")
	if !ok {
		return
	}

	schedules, err := h.scheduleService.List(c.Request.Context(), principal, year, quarter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(schedules))
}

func (h *Handler) updateSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid schedule id"))
		return
	}

	var req struct {
		Year              int     `json:"year" binding:"required"`
		Quarter           int     `json:"quarter" binding:"required"`
		AssignedPersonnel string  `json:"assigned_personnel" binding:"required"`
		Location          string  `json:"location" binding:"required"`
		ConductedOn       *string `json:"conducted_on"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), principal, id, service.ScheduleInput{
		Year:              req.Year,
		Quarter:           req.Quarter,
		AssignedPersonnel: req.AssignedPersonnel,
		Location:          req.Location,
		ConductedOn:       req.ConductedOn,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(schedule))
}

func (h *Handler) deleteSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid schedule id"))
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// optionalIntQuery parses a numeric query parameter. A missing parameter
// yields nil; a malformed one writes a 400 and reports !ok.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid "+name))
		return nil, false
	}
	return &value, true
}
