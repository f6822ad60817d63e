package routes

import (
	"time"

	"github.com/muhryhan/be-aset-dlh/internal/config"
	"github.com/muhryhan/be-aset-dlh/internal/core/container"
	"github.com/muhryhan/be-aset-dlh/internal/middleware"
	"github.com/muhryhan/be-aset-dlh/pkg/security"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register sets up the full route table. Everything the dashboard calls
// lives under /api behind the JWT middleware; login, the scanner lookup
// and static uploads stay public.
func Register(router *gin.Engine, c *container.Container, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerPublicRoutes(router, c)
	registerProtectedRoutes(router, c)
	registerUtilityRoutes(router, cfg)
}

func registerPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router)

	// The scanner runs on shared floor tablets without accounts; the
	// lookup exposes checklist dates only.
	public := router.Group("/api")
	c.PeriodicHandler.RegisterRoutes(public)
	c.ScanHandler.RegisterRoutes(public)
}

func registerProtectedRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")
	api.Use(security.JWTMiddleware())

	c.Kendaraan.RegisterRoutes(api)
	c.AlatBerat.RegisterRoutes(api)
	c.AlatKerja.RegisterRoutes(api)
	c.AC.RegisterRoutes(api)
	c.Tanah.RegisterRoutes(api)
	c.Tanaman.RegisterRoutes(api)
	c.TanamanMasuk.RegisterRoutes(api)
	c.TanamanKeluar.RegisterRoutes(api)

	c.SerberKendaraan.RegisterRoutes(api)
	c.SerberAlatBerat.RegisterRoutes(api)
	c.SerberAlatKerja.RegisterRoutes(api)
	c.SerberAC.RegisterRoutes(api)

	c.ServisHandler.RegisterRoutes(api)
	c.DashboardHandler.RegisterRoutes(api)
	c.UserHandler.RegisterRoutes(api)
	c.AuditLogHandler.RegisterRoutes(api)
}

func registerUtilityRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/health", middleware.HealthCheck())
	router.Static("/uploads", cfg.UploadDir)
}
