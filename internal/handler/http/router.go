package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http/middleware"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService          jwt.Service
	DBClient            *database.Client
	DefaultTenantID     string
	AuthHandler         AuthHandler
	EmployeeHandler     EmployeeHandler
	StatusHandler       StatusHandler
	SiteHandler         SiteHandler
	ShiftHandler        ShiftHandler
	AvailabilityHandler AvailabilityHandler
	LeaveHandler        LeaveHandler
	PlanningHandler     PlanningHandler
	LanguageHandler     LanguageHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "planning-admin"),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/request-code", deps.AuthHandler.RequestCode)
			r.Post("/resend-code", deps.AuthHandler.ResendCode)
			r.Post("/verify-code", deps.AuthHandler.VerifyCode)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		r.Route("/languages", func(r chi.Router) {
			r.Get("/", deps.LanguageHandler.ListLanguages)
			r.Get("/options", deps.LanguageHandler.ListOptions)
		})

		// Requires authentication. Tokens without a tenant claim fall
		// back to the configured demo tenant.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.ResolveTenant(deps.DBClient, deps.DefaultTenantID))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.ListEmployees)
				r.Post("/", deps.EmployeeHandler.CreateEmployee)
				r.Get("/roster", deps.EmployeeHandler.GetRoster)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.EmployeeHandler.GetEmployee)
					r.Put("/", deps.EmployeeHandler.UpdateEmployee)
					r.Get("/card", deps.EmployeeHandler.GetEmployeeCard)
					r.Post("/archive", deps.EmployeeHandler.ArchiveEmployee)
					r.Post("/restore", deps.EmployeeHandler.RestoreEmployee)
					r.Get("/leave-summary", deps.LeaveHandler.GetSummary)
				})
			})

			r.Route("/statuses", func(r chi.Router) {
				r.Get("/", deps.StatusHandler.ListStatuses)
				r.Post("/", deps.StatusHandler.CreateStatus)
				r.Get("/{code}", deps.StatusHandler.GetStatus)
				r.Put("/{code}", deps.StatusHandler.UpdateStatus)
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", deps.SiteHandler.ListSites)
				r.Post("/", deps.SiteHandler.CreateSite)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.SiteHandler.GetSite)
					r.Put("/", deps.SiteHandler.UpdateSite)
					r.Post("/deactivate", deps.SiteHandler.DeactivateSite)
					r.Post("/activate", deps.SiteHandler.ActivateSite)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.ShiftHandler.ListShifts)
				r.Post("/", deps.ShiftHandler.CreateShift)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.ShiftHandler.GetShift)
					r.Put("/", deps.ShiftHandler.UpdateShift)
					r.Delete("/", deps.ShiftHandler.DeleteShift)
					r.Post("/transition", deps.ShiftHandler.TransitionShift)
					r.Route("/assignments", func(r chi.Router) {
						r.Post("/", deps.ShiftHandler.ProposeAssignment)
						r.Post("/{assignmentID}/confirm", deps.ShiftHandler.ConfirmAssignment)
						r.Post("/{assignmentID}/decline", deps.ShiftHandler.DeclineAssignment)
					})
				})
			})

			r.Route("/availability", func(r chi.Router) {
				r.Get("/day", deps.AvailabilityHandler.ResolveDay)
				r.Route("/patterns", func(r chi.Router) {
					r.Get("/", deps.AvailabilityHandler.ListPatterns)
					r.Post("/", deps.AvailabilityHandler.CreatePattern)
					r.Put("/{id}", deps.AvailabilityHandler.UpdatePattern)
				})
				r.Route("/exceptions", func(r chi.Router) {
					r.Post("/", deps.AvailabilityHandler.CreateException)
					r.Post("/{id}/approve", deps.AvailabilityHandler.ApproveException)
					r.Delete("/{id}", deps.AvailabilityHandler.DeleteException)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", deps.LeaveHandler.ListLeaves)
				r.Post("/", deps.LeaveHandler.CreateLeave)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.LeaveHandler.GetLeave)
					r.Post("/approve", deps.LeaveHandler.ApproveLeave)
					r.Post("/reject", deps.LeaveHandler.RejectLeave)
					r.Post("/cancel", deps.LeaveHandler.CancelLeave)
				})
			})

			r.Route("/planning/generations", func(r chi.Router) {
				r.Get("/", deps.PlanningHandler.ListGenerations)
				r.Post("/", deps.PlanningHandler.StartGeneration)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.PlanningHandler.GetGeneration)
					r.Post("/complete", deps.PlanningHandler.CompleteGeneration)
					r.Post("/fail", deps.PlanningHandler.FailGeneration)
					r.Post("/apply", deps.PlanningHandler.ApplyGeneration)
				})
			})
		})
	})
	return r
}
