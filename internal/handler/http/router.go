package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(employeeHandler EmployeeHandler, punchHandler PunchHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-biotrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Put("/{id}", employeeHandler.SaveEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.ListPunches)
			r.Post("/", punchHandler.CreatePunch)
			r.Post("/sync", punchHandler.Sync)
			r.Delete("/{id}", punchHandler.DeletePunch)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/daily", attendanceHandler.Daily)
			r.Get("/range", attendanceHandler.Range)
			r.Get("/employees/{id}", attendanceHandler.Employee)
			r.Get("/summary", attendanceHandler.Summary)
		})
	})
	return r
}
