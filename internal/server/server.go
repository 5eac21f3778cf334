package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pras75299/gymapp/internal/auth"
	"github.com/pras75299/gymapp/internal/config"
	"github.com/pras75299/gymapp/internal/email"
	"github.com/pras75299/gymapp/internal/gym"
	"github.com/pras75299/gymapp/internal/pass"
	"github.com/pras75299/gymapp/internal/payment"
	"github.com/pras75299/gymapp/internal/qrcode"
	"github.com/pras75299/gymapp/internal/ratelimit"
	"github.com/pras75299/gymapp/internal/user"
	"github.com/pras75299/gymapp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	signer := qrcode.NewSigner(cfg.QRSecret)
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	gymRepo := gym.NewRepository(db)
	gymService := gym.NewService(gymRepo)
	gymHandler := gym.NewHandler(gymService)

	passRepo := pass.NewRepository(db)
	passService := pass.NewService(passRepo, gymRepo, gateway, signer, emailService, cfg.RazorpayKeyID)
	passHandler := pass.NewHandler(passService)

	webhookHandler := payment.NewWebhookHandler(cfg.RazorpayWebhookSecret, passService)

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	validationService := validation.NewService(passService, signer)
	validationHandler := validation.NewHandler(validationService, newValidateLimiter(cfg))

	authMiddleware := auth.Middleware(cfg.JWTSecret)
	optionalAuth := auth.OptionalMiddleware(cfg.JWTSecret)

	anon := router.Group("/api")
	{
		anon.GET("/gym/:qrIdentifier", gymHandler.GetByQRIdentifier)
		anon.POST("/webhook", webhookHandler.Handle)
		anon.GET("/validate", validationHandler.RateLimit(), validationHandler.Validate)
	}

	// Purchase flows work for both signed-in users and anonymous devices.
	purchase := router.Group("/api")
	purchase.Use(optionalAuth)
	{
		purchase.POST("/passes/purchase", passHandler.Purchase)
		purchase.POST("/payments/confirm", passHandler.Confirm)
		purchase.GET("/passes/:passId/status", passHandler.Status)
		purchase.GET("/passes/active", passHandler.ListActive)
	}

	me := router.Group("/api/users")
	me.Use(authMiddleware)
	{
		me.POST("/me", userHandler.Sync)
		me.GET("/me", userHandler.Me)
	}

	admin := router.Group("/api/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/gyms", gymHandler.CreateGym)
		admin.GET("/gyms", gymHandler.ListGyms)
		admin.POST("/gyms/:gymID/passes", gymHandler.CreatePassType)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// newValidateLimiter picks the fixed-window backend for the validation
// endpoint. Redis keeps the limit honest across replicas; without it the
// process-local window still protects a single instance.
func newValidateLimiter(cfg *config.Config) ratelimit.Limiter {
	limit := cfg.ValidateRateLimit
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return ratelimit.NewRedisLimiter(client, limit, time.Minute)
	}
	return ratelimit.NewMemoryLimiter(limit, time.Minute)
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Device-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
