package main

import (
	"fmt"
	"os"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/auth"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/config"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/db"
	httphandler "github.com/kentgarcia/EnviroTrace-sub011/internal/http"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/logger"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	testRepo := repository.NewEmissionTestRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)
	officeRepo := repository.NewOfficeRepository(database)
	userRepo := repository.NewUserRepository(database)
	violationRepo := repository.NewViolationRepository(database)
	plantingRepo := repository.NewPlantingRepository(database)

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	vehicleService := service.NewVehicleService(vehicleRepo, testRepo)
	testService := service.NewEmissionTestService(testRepo, vehicleRepo, vehicleService)
	scheduleService := service.NewScheduleService(scheduleRepo)
	gridService := service.NewGridService(vehicleRepo, testRepo, officeRepo)
	complianceService := service.NewComplianceService(vehicleRepo, testRepo, officeRepo)
	syncService := service.NewSyncService(vehicleRepo, vehicleService, appLogger)
	officeService := service.NewOfficeService(officeRepo)
	violationService := service.NewViolationService(violationRepo)
	plantingService := service.NewPlantingService(plantingRepo)
	userService := service.NewUserService(userRepo, tokenIssuer, cfg.Auth.OTPTTL, appLogger)

	handler := httphandler.NewHandler(
		vehicleService,
		testService,
		scheduleService,
		gridService,
		complianceService,
		syncService,
		officeService,
		violationService,
		plantingService,
		userService,
		appLogger,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting envirotrace api")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
