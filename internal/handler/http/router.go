package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeHandler EmployeeHandler,
	hoursHandler HoursHandler,
	reportHandler ReportHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Delete("/", employeeHandler.RemoveEmployees)

			r.Route("/{fileKey}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Get("/availability", employeeHandler.GetAvailability)
				r.Put("/availability", employeeHandler.SubmitAvailability)
			})
		})

		r.Route("/business-hours", func(r chi.Router) {
			r.Get("/", hoursHandler.GetBusinessHours)
			r.Put("/", hoursHandler.SaveBusinessHours)
			r.Get("/range", hoursHandler.GetTimeRange)
		})

		r.Route("/report", func(r chi.Router) {
			r.Get("/", reportHandler.GetReport)
			r.Post("/export", reportHandler.ExportReport)
		})
	})

	return r
}
