package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/samar-devp/workforce-backend-go/internal/handler/http/middleware"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Shift      ShiftHandler
	WeekOff    WeekOffPolicyHandler
	Holiday    HolidayHandler
	Leave      LeaveHandler
	Location   LocationHandler
	Attendance AttendanceHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.GetByID)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)

				r.Get("/{id}/reports/monthly", h.Report.ComputeMonth)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Shift.List)
				r.Post("/", h.Shift.Create)
				r.Get("/{id}", h.Shift.GetByID)
				r.Put("/{id}", h.Shift.Update)
				r.Delete("/{id}", h.Shift.Delete)
			})

			r.Route("/week-off-policies", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.WeekOff.List)
				r.Post("/", h.WeekOff.Create)
				r.Get("/{id}", h.WeekOff.GetByID)
				r.Put("/{id}", h.WeekOff.Update)
				r.Delete("/{id}", h.WeekOff.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)
				r.Get("/{id}", h.Holiday.GetByID)
				r.Put("/{id}", h.Holiday.Update)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Location.List)
				r.Post("/", h.Location.Create)
				r.Get("/{id}", h.Location.GetByID)
				r.Put("/{id}", h.Location.Update)
				r.Delete("/{id}", h.Location.Delete)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Leave.CreateType)
				})
			})

			r.Route("/leave-applications", func(r chi.Router) {
				r.Get("/", h.Leave.ListApplications)
				r.Post("/", h.Leave.Apply)
				r.Get("/{id}", h.Leave.GetApplication)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}/approve", h.Leave.Approve)
					r.Patch("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
			})
		})
	})
	return r
}
