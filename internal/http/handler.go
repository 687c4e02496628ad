package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

type Handler struct {
	vehicleService    *service.VehicleService
	testService       *service.EmissionTestService
	scheduleService   *service.ScheduleService
	gridService       *service.GridService
	complianceService *service.ComplianceService
	syncService       *service.SyncService
	officeService     *service.OfficeService
	violationService  *service.ViolationService
	plantingService   *service.PlantingService
	userService       *service.UserService
	log               zerolog.Logger
}

func NewHandler(
	vehicleService *service.VehicleService,
	testService *service.EmissionTestService,
	scheduleService *service.ScheduleService,
	gridService *service.GridService,
	complianceService *service.ComplianceService,
	syncService *service.SyncService,
	officeService *service.OfficeService,
	violationService *service.ViolationService,
	plantingService *service.PlantingService,
	userService *service.UserService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		vehicleService:    vehicleService,
		testService:       testService,
		scheduleService:   scheduleService,
		gridService:       gridService,
		complianceService: complianceService,
		syncService:       syncService,
		officeService:     officeService,
		violationService:  violationService,
		plantingService:   plantingService,
		userService:       userService,
		log:               log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		auth.POST("/verify-otp", h.verifyOTP)
		auth.POST("/resend-otp", h.resendOTP)
	}

	protected := api.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/auth/me", h.currentUser)

	emission := protected.Group("/emission")
	{
		emission.GET("/vehicles", h.listVehicles)
		emission.POST("/vehicles", h.createVehicle)
		emission.GET("/vehicles/:id", h.getVehicle)
		emission.PUT("/vehicles/:id", h.updateVehicle)
		emission.DELETE("/vehicles/:id", h.deleteVehicle)
		emission.POST("/vehicles/sync", h.syncVehicles)
		emission.POST("/vehicles/sync/preview", h.syncPreview)

		emission.GET("/tests", h.listTests)
		emission.POST("/tests", h.createTest)
		emission.PUT("/tests/:id", h.updateTest)
		emission.DELETE("/tests/:id", h.deleteTest)

		emission.GET("/test-schedules", h.listSchedules)
		emission.POST("/test-schedules", h.createSchedule)
		emission.PUT("/test-schedules/:id", h.updateSchedule)
		emission.DELETE("/test-schedules/:id", h.deleteSchedule)

		emission.GET("/grid", h.testingGrid)
		emission.GET("/dashboard", h.dashboard)
		emission.GET("/office-compliance", h.officeCompliance)
	}

	airQuality := protected.Group("/air-quality")
	{
		airQuality.GET("/violations", h.listViolations)
		airQuality.POST("/violations", h.createViolation)
		airQuality.PUT("/violations/:id/status", h.setViolationStatus)
		airQuality.DELETE("/violations/:id", h.deleteViolation)
	}

	greening := protected.Group("/urban-greening")
	{
		greening.GET("/plantings", h.listPlantings)
		greening.POST("/plantings", h.createPlanting)
		greening.PUT("/plantings/:id", h.updatePlanting)
		greening.DELETE("/plantings/:id", h.deletePlanting)
	}

	exports := protected.Group("/exports")
	{
		exports.GET("/vehicles.csv", h.exportVehiclesCSV)
		exports.GET("/office-compliance.xlsx", h.exportComplianceWorkbook)
		exports.POST("/report.docx", h.exportWordReport)
	}

	admin := protected.Group("/admin")
	{
		admin.GET("/users", h.listUsers)
		admin.GET("/users/:id", h.getUser)
		admin.PUT("/users/:id/roles", h.setUserRoles)

		admin.GET("/offices", h.listOffices)
		admin.POST("/offices", h.createOffice)
		admin.PUT("/offices/:id", h.updateOffice)
		admin.DELETE("/offices/:id", h.deleteOffice)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrEmailNotVerified),
		errors.Is(err, service.ErrInvalidOTP):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
