package pkg

import (
	"context"
	"log"
	"os"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/config"
	"github.com/Temoho9984/CareerConnect-Backend/internal/course"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobapplication"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"
	"github.com/Temoho9984/CareerConnect-Backend/internal/matching"
	"github.com/Temoho9984/CareerConnect-Backend/internal/notification"
	"github.com/Temoho9984/CareerConnect-Backend/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewMailerConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(auth.NewAuthService),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(course.NewCourseRepository),
	fx.Provide(course.NewCourseService),
	fx.Provide(course.NewCourseHandler),
	fx.Provide(jobs.NewJobRepository),
	fx.Provide(jobs.NewJobService),
	fx.Provide(jobs.NewJobHandler),
	fx.Provide(matching.NewMatchRepository),
	fx.Provide(matching.NewMatchService),
	fx.Provide(matching.NewMatchHandler),
	fx.Provide(notification.NewNotificationRepository),
	fx.Provide(notification.NewNotificationService),
	fx.Provide(notification.NewNotificationHandler),
	fx.Provide(application.NewApplicationRepository),
	fx.Provide(NewApplicationService),
	fx.Provide(application.NewApplicationHandler),
	fx.Provide(jobapplication.NewJobApplicationRepository),
	fx.Provide(NewJobApplicationService),
	fx.Provide(jobapplication.NewJobApplicationHandler),
	fx.Invoke(RegisterRoutes))

// NewApplicationService binds the concrete repositories to the workflow's
// dependency interfaces.
func NewApplicationService(store *application.ApplicationRepository, courses *course.CourseRepository, users *auth.UserRepository, notifications *notification.NotificationService) *application.ApplicationService {
	return application.NewApplicationService(store, courses, users, notifications)
}

func NewJobApplicationService(store *jobapplication.JobApplicationRepository, jobRepo *jobs.JobRepository, users *auth.UserRepository, notifications *notification.NotificationService) *jobapplication.JobApplicationService {
	return jobapplication.NewJobApplicationService(store, jobRepo, users, notifications)
}

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server running on http://localhost:" + port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.AuthHandler,
	courseHandler *course.CourseHandler,
	jobHandler *jobs.JobHandler,
	matchHandler *matching.MatchHandler,
	notificationHandler *notification.NotificationHandler,
	applicationHandler *application.ApplicationHandler,
	jobApplicationHandler *jobapplication.JobApplicationHandler,
) {
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/verify-email", authHandler.VerifyEmail)
	e.POST("/reset-password", authHandler.ResetPassword)

	e.GET("/courses", courseHandler.ListAll)
	e.GET("/courses/institution/:institutionId", courseHandler.ListByInstitution)
	e.GET("/courses/:courseId", courseHandler.Get)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.Use(middleware.CasbinMiddleware)

	protected.GET("/profile", authHandler.Profile)
	protected.GET("/jobs", jobHandler.ListActive)

	protected.POST("/student/applications", applicationHandler.Submit)
	protected.GET("/student/applications", applicationHandler.ListForStudent)
	protected.POST("/student/job-applications", jobApplicationHandler.Apply)
	protected.GET("/student/job-applications", jobApplicationHandler.ListForStudent)
	protected.DELETE("/student/job-applications/:applicationId", jobApplicationHandler.Withdraw)

	protected.GET("/institution/applications", applicationHandler.ListForInstitution)
	protected.PUT("/institution/applications/:applicationId/status", applicationHandler.SetStatus)

	protected.POST("/company/jobs", jobHandler.Post)
	protected.GET("/company/jobs", jobHandler.ListForCompany)
	protected.PUT("/company/jobs/:jobId/close", jobHandler.Close)
	protected.GET("/company/jobs/:jobId/applicants", matchHandler.Applicants)
	protected.GET("/company/jobs/:jobId/applications", jobApplicationHandler.ListForJob)
	protected.PUT("/company/job-applications/:applicationId/status", jobApplicationHandler.SetStatus)

	protected.GET("/notifications", notificationHandler.List)
	protected.PUT("/notifications/mark-all-read", notificationHandler.MarkAllRead)
	protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	protected.PUT("/notifications/:notificationId/read", notificationHandler.MarkRead)
}
