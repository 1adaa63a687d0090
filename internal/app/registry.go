package app

import (
	"database/sql"
	"net/http"

	"go-hrms/internal/announcement"
	"go-hrms/internal/config"
	"go-hrms/internal/dashboard"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/staff"
	"go-hrms/internal/unit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	leaveRepo := leave.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	unitRepo := unit.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	announcementRepo := announcement.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(connection.NewSQLX(db))
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadPolicy(rbac.DefaultPolicy()); err != nil {
		return err
	}

	// --- Services ---
	leaveService := leave.NewService(db, leaveRepo, outboxRepo, logger)
	staffService := staff.NewService(db, staffRepo, counterRepo, logger)
	unitService := unit.NewService(db, unitRepo, rdb, logger)
	salaryService := salary.NewService(db, salaryRepo, logger)
	announcementService := announcement.NewService(db, announcementRepo, rdb, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, leaveRepo, logger)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService, logger)
	staffHandler := staff.NewHandler(staffService, logger)
	unitHandler := unit.NewHandler(unitService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	announcementHandler := announcement.NewHandler(announcementService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1",
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.RateLimitByUser(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst),
	)
	management := api.Group("/management", middleware.RequirePrivileged())
	{
		leave.RegisterRoutes(api, management, leaveHandler, rbacService, rdb)
		staff.RegisterRoutes(api, management, staffHandler, rbacService)
		unit.RegisterRoutes(management, unitHandler, rbacService)
		dashboard.RegisterRoutes(management, dashboardHandler, rbacService)
		salary.RegisterRoutes(api, management, salaryHandler, rbacService)
		announcement.RegisterRoutes(api, management, announcementHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
