package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "numerica-backend/internal/config"
	h "numerica-backend/internal/http/handlers"
	"numerica-backend/internal/http/middleware"
	"numerica-backend/internal/opaqueid"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	encoder, err := opaqueid.New(env.HashidSalt)
	if err != nil {
		log.Fatalf("failed to init id encoder: %v", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))
	r.Use(middleware.AuthOptional([]byte(env.JWTSecret)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env, encoder))
		auth.POST("/register", h.Register(env, encoder))

		payroll := api.Group("/payroll")
		payroll.GET("", h.GetPayroll(env))
		payroll.GET("/filters", h.GetPayrollFilters(env))
		payroll.GET("/periodos", h.GetPayrollPeriods(env))
		payroll.GET("/unique-count", h.GetPayrollUniqueCount(env))
		payroll.GET("/export", h.ExportPayrollPDF(env))
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return cors.New(cfg)
}
