package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/biotrack-id/attendance-backend-go/internal/config"
	appHTTP "github.com/biotrack-id/attendance-backend-go/internal/handler/http"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/cron"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/device"
	"github.com/biotrack-id/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/biotrack-id/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/biotrack-id/attendance-backend-go/internal/service/employee"
	punchService "github.com/biotrack-id/attendance-backend-go/internal/service/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/service/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	deviceClient := device.NewClient(cfg.Device)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	syncSvc := reconcile.NewSyncService(punchRepo, deviceClient)
	calculationSvc := attendanceService.NewCalculationService(employeeRepo, punchRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc, syncSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(calculationSvc)

	router := appHTTP.NewRouter(employeeHandler, punchHandler, attendanceHandler)

	scheduler := cron.NewScheduler()
	cron.NewSyncJobs(syncSvc, cfg.Device).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
