package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Benjakusa/salonpro-manager/internal/config"
	"github.com/Benjakusa/salonpro-manager/internal/handler"
	appointmentHandler "github.com/Benjakusa/salonpro-manager/internal/handler/appointment"
	catalogHandler "github.com/Benjakusa/salonpro-manager/internal/handler/catalog"
	clientHandler "github.com/Benjakusa/salonpro-manager/internal/handler/client"
	reportHandler "github.com/Benjakusa/salonpro-manager/internal/handler/report"
	stylistHandler "github.com/Benjakusa/salonpro-manager/internal/handler/stylist"
	"github.com/Benjakusa/salonpro-manager/internal/middleware"
	"github.com/Benjakusa/salonpro-manager/internal/repository/sqlite"
	"github.com/Benjakusa/salonpro-manager/internal/router"
	"github.com/Benjakusa/salonpro-manager/internal/seed"
	catalogService "github.com/Benjakusa/salonpro-manager/internal/service/catalog"
	clientService "github.com/Benjakusa/salonpro-manager/internal/service/client"
	reportService "github.com/Benjakusa/salonpro-manager/internal/service/report"
	"github.com/Benjakusa/salonpro-manager/internal/service/scheduling"
	stylistService "github.com/Benjakusa/salonpro-manager/internal/service/stylist"
	"github.com/Benjakusa/salonpro-manager/pkg/logger"
	"github.com/Benjakusa/salonpro-manager/pkg/metrics"
)

func main() {
	seedData := flag.Bool("seed", false, "load demo data and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		appLogger.Fatal(err, "failed to open database")
	}
	defer db.Close()

	// Repositories
	clientRepo := sqlite.NewClientRepository(db)
	stylistRepo := sqlite.NewStylistRepository(db)
	serviceRepo := sqlite.NewServiceRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)

	m := metrics.New("salonpro")

	// Services
	clientSvc := clientService.NewService(clientRepo, appointmentRepo)
	stylistSvc := stylistService.NewService(stylistRepo)
	catalogSvc := catalogService.NewService(serviceRepo)
	schedulerSvc := scheduling.NewService(appointmentRepo, clientRepo, stylistRepo, serviceRepo, m)
	reportSvc := reportService.NewService(schedulerSvc, serviceRepo, stylistRepo, cfg.Reports.CacheTTL)

	if *seedData {
		if err := seed.Load(context.Background(), clientSvc, stylistSvc, catalogSvc, schedulerSvc); err != nil {
			appLogger.Fatal(err, "failed to seed demo data")
		}
		appLogger.Info("demo data loaded")
		return
	}

	// Handlers
	h := handler.NewHandler()
	r := router.NewRouter(h, m, middleware.DefaultCORSConfig(),
		clientHandler.NewHandler(clientSvc),
		stylistHandler.NewHandler(stylistSvc),
		catalogHandler.NewHandler(catalogSvc),
		appointmentHandler.NewHandler(schedulerSvc),
		reportHandler.NewHandler(reportSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}
