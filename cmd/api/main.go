package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"salondesk/cmd/internal/config"
	"salondesk/cmd/internal/domain/redisstore"
	"salondesk/cmd/internal/domain/sqlite"
	"salondesk/cmd/internal/domain/sqlite/repository"
	"salondesk/cmd/internal/domain/store"
	"salondesk/cmd/internal/events"
	"salondesk/cmd/internal/routes"
	"salondesk/cmd/internal/service"
	"salondesk/cmd/internal/telemetry"
	"salondesk/cmd/internal/utils/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OtelEnabled,
		ServiceName:  cfg.ServiceName,
		OTLPEndpoint: cfg.OtelEndpoint,
		SampleRatio:  cfg.OtelSamplingRatio,
	})
	if err != nil {
		log.Fatal("failed to initialize tracing: ", err)
	}

	// Snapshot storage
	persister, closeStorage, err := openPersister(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize storage: ", err)
	}
	s, err := store.Open(ctx, persister)
	if err != nil {
		log.Fatal("failed to load salon data: ", err)
	}
	if cfg.SeedDemo && s.Seed(ctx) {
		log.Info("seeded demo data")
	}

	publisher, err := openPublisher(cfg)
	if err != nil {
		log.Fatal("failed to initialize event publisher: ", err)
	}

	validate := validators.New()

	// Getting services
	apptService := service.NewAppointmentService(s, publisher, validate)
	staffService := service.NewStaffService(s, validate)
	catalogService := service.NewCatalogService(s, validate)
	customerService := service.NewCustomerService(s, validate)
	packageService := service.NewPackageService(s, validate)
	noteService := service.NewNoteService(s, validate)
	reportService := service.NewReportService(s, validate)
	preferenceService := service.NewPreferenceService(s, validate)

	// Getting routes
	apptRoutes := routes.NewAppointmentDefault(apptService)
	staffRoutes := routes.NewStaffDefault(staffService)
	catalogRoutes := routes.NewCatalogDefault(catalogService)
	customerRoutes := routes.NewCustomerDefault(customerService)
	packageRoutes := routes.NewPackageDefault(packageService)
	noteRoutes := routes.NewNoteDefault(noteService)
	reportRoutes := routes.NewReportDefault(reportService)
	preferenceRoutes := routes.NewPreferenceDefault(preferenceService)
	healthRoutes := routes.NewHealthDefault(s)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.ServiceName)))

	e.GET("/healthz", healthRoutes.Health)

	// Appointments
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.GET("/api/appointments/:id", apptRoutes.GetAppointment)
	e.PUT("/api/appointments/:id", apptRoutes.UpdateAppointment)
	e.DELETE("/api/appointments/:id", apptRoutes.DeleteAppointment)
	e.POST("/api/appointments/:id/move", apptRoutes.MoveAppointment)
	e.PUT("/api/appointments/:id/status", apptRoutes.SetStatus)

	// Pseudo-entities answering "can this be booked?"
	e.GET("/api/availability", apptRoutes.CheckAvailability)
	e.GET("/api/calendar", apptRoutes.GetCalendar)

	// Staff and leaves
	e.GET("/api/staff", staffRoutes.GetStaff)
	e.POST("/api/staff", staffRoutes.CreateStaff)
	e.GET("/api/staff/:id", staffRoutes.GetStaffMember)
	e.PUT("/api/staff/:id", staffRoutes.UpdateStaff)
	e.DELETE("/api/staff/:id", staffRoutes.DeleteStaff)
	e.PUT("/api/staff/:id/working-hours", staffRoutes.UpdateWorkingHours)
	e.GET("/api/staff/:id/slots", apptRoutes.GetFreeSlots)
	e.GET("/api/staff/:id/leave-status", staffRoutes.GetLeaveStatus)
	e.GET("/api/leaves", staffRoutes.GetLeaves)
	e.POST("/api/leaves", staffRoutes.CreateLeave)
	e.PUT("/api/leaves/:id", staffRoutes.UpdateLeave)
	e.DELETE("/api/leaves/:id", staffRoutes.DeleteLeave)

	// Service catalog
	e.GET("/api/services", catalogRoutes.GetServices)
	e.POST("/api/services", catalogRoutes.CreateService)
	e.GET("/api/services/categories", catalogRoutes.GetCategories)
	e.PUT("/api/services/:id", catalogRoutes.UpdateService)
	e.DELETE("/api/services/:id", catalogRoutes.DeleteService)

	// Customers and packages
	e.GET("/api/customers", customerRoutes.GetCustomers)
	e.POST("/api/customers", customerRoutes.CreateCustomer)
	e.GET("/api/customers/:id", customerRoutes.GetCustomer)
	e.PUT("/api/customers/:id", customerRoutes.UpdateCustomer)
	e.DELETE("/api/customers/:id", customerRoutes.DeleteCustomer)
	e.GET("/api/customers/:id/appointments", customerRoutes.GetHistory)
	e.GET("/api/packages", packageRoutes.GetPackages)
	e.POST("/api/packages", packageRoutes.CreatePackage)
	e.PUT("/api/packages/:id", packageRoutes.UpdatePackage)
	e.DELETE("/api/packages/:id", packageRoutes.DeletePackage)

	// Notes
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.PUT("/api/notes/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote)
	e.POST("/api/notes/:id/read", noteRoutes.MarkRead)

	// Reports
	e.GET("/api/reports/summary", reportRoutes.GetSummary)
	e.GET("/api/reports/spend", reportRoutes.GetSpend)
	e.GET("/api/reports/export", reportRoutes.Export)

	e.GET("/api/preferences", preferenceRoutes.GetPreferences)
	e.PUT("/api/preferences", preferenceRoutes.SetPreferences)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown: ", err)
	}
	if err := publisher.Close(); err != nil {
		log.Error("event publisher close: ", err)
	}
	if err := closeStorage.Close(); err != nil {
		log.Error("storage close: ", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown: ", err)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func openPersister(ctx context.Context, cfg config.Config) (store.Persister, io.Closer, error) {
	switch cfg.StorageDriver {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.New(client, cfg.StorageKey), client, nil
	case "memory":
		return store.NewMemoryPersister(nil), closerFunc(func() error { return nil }), nil
	}

	db, err := sqlite.Init(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return repository.NewSnapshotRepository(db, cfg.StorageKey), sqlDB, nil
}

func openPublisher(cfg config.Config) (events.Publisher, error) {
	switch cfg.EventsDriver {
	case "amqp":
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "kafka":
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	}
	return events.Nop{}, nil
}
