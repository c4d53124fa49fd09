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
	"github.com/talentra-hq/hrms-backend-go/internal/config"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/middleware"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Settings     SettingsHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Holiday      HolidayHandler
	Payroll      PayrollHandler
	Recruitment  RecruitmentHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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
			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(10, time.Minute))
				r.Post("/login", h.Auth.Login)
			})
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		// EventSource cannot carry an Authorization header, so the stream
		// endpoint authenticates with its own short-lived token.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Post("/break/start", h.Attendance.BreakStart)
				r.Post("/break/end", h.Attendance.BreakEnd)
				r.Get("/me/today", h.Attendance.MyToday)
				r.Get("/pending-checkouts", h.Attendance.PendingCheckouts)
				r.Post("/set-checkout", h.Attendance.SetCheckOut)

				// HR view
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/today", h.Attendance.ListToday)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/work-hours", h.Settings.GetWorkHours)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/work-hours", h.Settings.UpdateWorkHours)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Apply)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/", h.Payroll.List)
				r.Post("/", h.Payroll.Create)
				r.Put("/{id}", h.Payroll.Update)
				r.Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/recruitment", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Route("/candidates", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListCandidates)
					r.Post("/", h.Recruitment.CreateCandidate)
					r.Put("/{id}", h.Recruitment.UpdateCandidate)
					r.Delete("/{id}", h.Recruitment.DeleteCandidate)
				})

				r.Route("/jobs", func(r chi.Router) {
					r.Get("/", h.Recruitment.ListJobs)
					r.Post("/", h.Recruitment.CreateJob)
					r.Put("/{id}", h.Recruitment.UpdateJob)
					r.Delete("/{id}", h.Recruitment.DeleteJob)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/{id}/read", h.Notification.MarkAsRead)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.Get("/stream-token", h.Notification.GetStreamToken)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/dashboard/summary", h.Dashboard.Summary)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
