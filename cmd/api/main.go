package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/config"
	appHTTP "github.com/talentra-hq/hrms-backend-go/internal/handler/http"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/cron"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/email"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/oauth"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/sse"
	"github.com/talentra-hq/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/talentra-hq/hrms-backend-go/internal/service/attendance"
	authService "github.com/talentra-hq/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/talentra-hq/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/talentra-hq/hrms-backend-go/internal/service/employee"
	holidayService "github.com/talentra-hq/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/talentra-hq/hrms-backend-go/internal/service/leave"
	notificationService "github.com/talentra-hq/hrms-backend-go/internal/service/notification"
	payrollService "github.com/talentra-hq/hrms-backend-go/internal/service/payroll"
	recruitmentService "github.com/talentra-hq/hrms-backend-go/internal/service/recruitment"
	settingsService "github.com/talentra-hq/hrms-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		fmt.Println("Error initializing email service:", err)
		os.Exit(1)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, refreshTokenRepo, jwtService, emailService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, emailService)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, notificationSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	candidateSvc := recruitmentService.NewCandidateService(candidateRepo)
	jobSvc := recruitmentService.NewJobService(jobRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, settingsRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Recruitment:  appHTTP.NewRecruitmentHandler(candidateSvc, jobSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, jwtService, hub),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
