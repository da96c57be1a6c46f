package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	appHTTP "github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/storage"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/flatfile"
	employeeService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/employee"
	hoursService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/hours"
	reportService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	employeeRepo := flatfile.NewEmployeeRepository(fileStorage)
	hoursRepo := flatfile.NewHoursRepository(fileStorage)

	// Startup load is all-or-nothing: a corrupt record or hours file stops
	// the process rather than running against a partial roster.
	ctx := context.Background()
	hoursSvc, err := hoursService.NewHoursService(ctx, hoursRepo)
	if err != nil {
		log.Fatal("Failed to load business hours: ", err)
	}
	employeeSvc, err := employeeService.NewEmployeeService(ctx, employeeRepo, hoursSvc)
	if err != nil {
		log.Fatal("Failed to load employees: ", err)
	}
	reportSvc := reportService.NewReportService(employeeSvc, cfg.Storage.ExportDir)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	hoursHandler := appHTTP.NewHoursHandler(hoursSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		employeeHandler,
		hoursHandler,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
