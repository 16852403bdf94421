package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/config"
	appHTTP "github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/cron"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/jwt"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/otp"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/repository/postgresql"
	authService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/auth"
	availabilityService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/availability"
	employeeService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/employee"
	leaveService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/leave"
	planningService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/planning"
	shiftService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/shift"
	siteService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/site"
	statusService "github.com/RalstoniaWah/Planning-master-sub001/internal/service/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// Without a configured backend the service still starts: reads
	// come back empty and writes fail with a clear error.
	dbClient, err := database.Connect(cfg.DatabaseURL(), cfg.DatabaseConfigured(), database.PoolSettings{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer dbClient.Close()

	if !dbClient.IsConfigured() {
		slog.Warn("no data backend configured, running in fallback mode")
	}

	employeeRepo := postgresql.NewEmployeeRepository(dbClient)
	statusRepo := postgresql.NewStatusRepository(dbClient)
	siteRepo := postgresql.NewSiteRepository(dbClient)
	shiftRepo := postgresql.NewShiftRepository(dbClient)
	assignmentRepo := postgresql.NewAssignmentRepository(dbClient)
	patternRepo := postgresql.NewPatternRepository(dbClient)
	exceptionRepo := postgresql.NewExceptionRepository(dbClient)
	leaveRepo := postgresql.NewLeaveRepository(dbClient)
	generationRepo := postgresql.NewGenerationRepository(dbClient)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	otpVerifier := otp.NewMemoryVerifier(otpOptions(cfg))

	availabilitySvc := availabilityService.NewAvailabilityService(patternRepo, exceptionRepo, leaveRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, statusRepo, availabilitySvc, nil)
	statusSvc := statusService.NewStatusService(statusRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, siteRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	planningSvc := planningService.NewPlanningService(generationRepo, siteRepo, assignmentRepo, dbClient)
	authSvc := authService.NewAuthService(employeeRepo, otpVerifier, jwtService)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("availability-pattern-expiry", time.Hour, cron.NewPatternExpiryJob(patternRepo))
	scheduler.AddJob("shift-completion", 15*time.Minute, cron.NewShiftCompletionJob(shiftRepo))
	scheduler.Start(context.Background())
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:          jwtService,
		DBClient:            dbClient,
		DefaultTenantID:     cfg.Tenant.DefaultID,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc, jwtService),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
		StatusHandler:       appHTTP.NewStatusHandler(statusSvc),
		SiteHandler:         appHTTP.NewSiteHandler(siteSvc),
		ShiftHandler:        appHTTP.NewShiftHandler(shiftSvc),
		AvailabilityHandler: appHTTP.NewAvailabilityHandler(availabilitySvc),
		LeaveHandler:        appHTTP.NewLeaveHandler(leaveSvc),
		PlanningHandler:     appHTTP.NewPlanningHandler(planningSvc),
		LanguageHandler:     appHTTP.NewLanguageHandler(),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func otpOptions(cfg *config.Config) otp.Options {
	codeTTL, err := time.ParseDuration(cfg.OTP.CodeTTL)
	if err != nil {
		codeTTL = 0
	}
	resendCooldown, err := time.ParseDuration(cfg.OTP.ResendCooldown)
	if err != nil {
		resendCooldown = 0
	}
	return otp.Options{
		CodeTTL:        codeTTL,
		MaxAttempts:    cfg.OTP.MaxAttempts,
		ResendCooldown: resendCooldown,
	}
}
