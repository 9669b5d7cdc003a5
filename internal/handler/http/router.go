package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hydroseal/erp-backend-go/internal/config"
	"github.com/hydroseal/erp-backend-go/internal/domain/user"
	"github.com/hydroseal/erp-backend-go/internal/handler/http/middleware"
	"github.com/hydroseal/erp-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	materialHandler MaterialHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hydroseal-erp"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Brute-force guard on credential endpoints.
			r.Use(httprate.LimitByIP(20, time.Minute))

			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
			r.Post("/register", authHandler.Register)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/{id}/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListForMonth)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleManager))
						r.Post("/", attendanceHandler.Record)
						r.Delete("/{attendanceID}", attendanceHandler.Delete)
					})
				})

				r.Route("/{id}/leaves", func(r chi.Router) {
					r.Post("/", leaveHandler.Create)
					r.Get("/", leaveHandler.ListForEmployee)
					r.Get("/{leaveID}", leaveHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleManager))
						r.Post("/{leaveID}/approve", leaveHandler.Approve)
						r.Post("/{leaveID}/reject", leaveHandler.Reject)
					})
				})

				// Payroll
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleManager))
					r.Get("/{id}/salary-preview", payrollHandler.Preview)
					r.Post("/{id}/salary", payrollHandler.Commit)
					r.Get("/{id}/salary-history", payrollHandler.History)
					r.Get("/{id}/retention", payrollHandler.RetentionLedger)
				})
			})

			r.Route("/materials", func(r chi.Router) {
				r.Get("/", materialHandler.List)
				r.Get("/{id}/stock", materialHandler.StockLedger)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleManager))
					r.Post("/", materialHandler.Create)
					r.Post("/{id}/movements", materialHandler.RecordMovement)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
