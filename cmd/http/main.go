package main

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/drivers/messaging"
	"agenda-service/internal/app/drivers/storage"
	"agenda-service/internal/app/services/core/appointments"
	"agenda-service/internal/app/services/core/auth"
	"agenda-service/internal/app/services/core/clinics"
	"agenda-service/internal/app/services/core/dashboard"
	"agenda-service/internal/app/services/core/doctors"
	"agenda-service/internal/app/services/core/patients"
	"agenda-service/internal/app/services/core/session"
	"agenda-service/internal/app/services/core/slot"
	"agenda-service/internal/app/services/core/users"
	"agenda-service/internal/app/services/shared/locker"
	"agenda-service/internal/app/services/shared/publisher"
	"agenda-service/internal/app/services/shared/ratelimiter"
	"agenda-service/internal/app/services/shared/redis"
	sharedStorage "agenda-service/internal/app/services/shared/storage"
	"agenda-service/internal/migration"
	"agenda-service/internal/pkg/constvars"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS)
	postgresPool := database.NewPostgresPool(ctx, driverConfig)
	redisClient := database.NewRedisClient(ctx, driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	storage.EnsureBucket(ctx, minioClient, internalConfig.Minio.AvatarBucketName)
	cancel()

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)

	if internalConfig.App.AutoMigrate {
		migrationLog := logger.NewLogrusLogger(internalConfig.App.Env, false)
		db := stdlib.OpenDBFromPool(postgresPool)
		applied, err := migration.Up(db, migrationLog)
		if err != nil {
			log.Fatal("Error applying migrations", zap.Error(err))
		}
		log.Info("Migrations applied", zap.Int("count", applied))
		_ = db.Close()
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresPool,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Address), zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	loginLimiter := ratelimiter.NewAttemptLimiter(
		redisRepository,
		log,
		constvars.LimiterGroupLogin,
		time.Second*constvars.LOGIN_ATTEMPT_WINDOW_IN_SECONDS,
		constvars.LOGIN_MAX_ATTEMPTS_PER_WINDOW,
	)
	avatarStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, cfg.Minio.PublicBaseURL)
	appointmentChannel := messaging.NewChannel(bootstrap.RabbitMQ, cfg.RabbitMQ.AppointmentQueue)
	appointmentPublisher := publisher.NewAppointmentPublisher(appointmentChannel, cfg.RabbitMQ.AppointmentQueue)
	normalizer := slot.NewNormalizer(location)

	// Session
	sessionService := session.NewSessionService(redisRepository, log)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, log)
	clinicRepository := clinics.NewClinicPostgresRepository(bootstrap.PostgresDB, log)
	doctorRepository := doctors.NewDoctorPostgresRepository(bootstrap.PostgresDB, log)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB, log)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, log)
	dashboardRepository := dashboard.NewDashboardPostgresRepository(bootstrap.PostgresDB, log)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, clinicRepository, sessionService, loginLimiter, cfg, log)
	authController := controllers.NewAuthController(log, authUsecase)

	// Clinic
	clinicUsecase := clinics.NewClinicUsecase(clinicRepository, sessionService, log)
	clinicController := controllers.NewClinicController(log, clinicUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, appointmentRepository, avatarStorage, normalizer, cfg, log)
	doctorController := controllers.NewDoctorController(log, doctorUsecase)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientRepository, appointmentRepository, location, log)
	patientController := controllers.NewPatientController(log, patientUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		patientRepository,
		doctorRepository,
		lockService,
		appointmentPublisher,
		normalizer,
		log,
	)
	appointmentController := controllers.NewAppointmentController(log, appointmentUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, appointmentRepository, normalizer, log)
	dashboardController := controllers.NewDashboardController(log, dashboardUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionService, cfg)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		authController,
		clinicController,
		doctorController,
		patientController,
		appointmentController,
		dashboardController,
	)
}
