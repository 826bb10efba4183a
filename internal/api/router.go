package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulahub/course-platform/internal/api/handler"
	"github.com/aulahub/course-platform/internal/api/middleware"
	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
	"github.com/aulahub/course-platform/internal/core/service"
	"github.com/aulahub/course-platform/internal/infrastructure/config"
	mongostore "github.com/aulahub/course-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/aulahub/course-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, signer ports.StorageSigner, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("courseplatform"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	courseRepo := mongostore.NewCourseRepository(db)
	enrollmentRepo := mongostore.NewEnrollmentRepository(db)
	revoker := redisstore.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL)
	courseService := service.NewCourseService(courseRepo, userRepo, enrollmentRepo, signer, cfg.SignedURLTTL, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)

	session := middleware.Session(cfg.JWTSecret, cfg.CookieName, revoker)

	authHandler := handler.NewAuthHandler(authService, handler.CookieSettings{
		Name:   cfg.CookieName,
		Secure: !cfg.IsDevelopment(),
		TTL:    cfg.TokenTTL,
	})
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	uploadHandler := handler.NewUploadHandler(signer, cfg.SignedURLTTL)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, session)
	e.GET("/auth/me", authHandler.Me, session)
	e.GET("/profile", userHandler.Profile, session)

	// --- Courses ---
	// Update/Delete/Lessons carry no RBAC: the service resolves the
	// course first so an absent resource answers 404 before any 403.
	courses := e.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.POST("", courseHandler.Create, session, middleware.RBAC(domain.RoleInstructor))
	courses.PUT("/:id", courseHandler.Update, session)
	courses.DELETE("/:id", courseHandler.Delete, session)
	courses.GET("/:id/lessons", courseHandler.Lessons, session)

	// --- Enrollments ---
	enrollments := e.Group("/enrollments", session)
	enrollments.POST("/:courseId", enrollmentHandler.Enroll, middleware.RBAC(domain.RoleStudent))
	enrollments.GET("/me", enrollmentHandler.Mine, middleware.RBAC(domain.RoleStudent))
	enrollments.GET("/course/:courseId", enrollmentHandler.ForCourse, middleware.RBAC(domain.RoleInstructor))
	enrollments.DELETE("/:courseId", enrollmentHandler.Cancel, middleware.RBAC(domain.RoleStudent))

	// --- Upload ---
	e.POST("/upload", uploadHandler.Create, session, middleware.RBAC(domain.RoleInstructor))

	// --- Admin ---
	admin := e.Group("/admin", session, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
