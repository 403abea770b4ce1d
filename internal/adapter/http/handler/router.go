package handler

import (
	"cashcard-service/internal/adapter/http/middleware"
	redisStore "cashcard-service/internal/adapter/storage/redis"
	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc        ports.CardService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Realm          string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := r.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Authenticated routes ---
	authn := middleware.Authenticate(deps.AuthSvc, deps.TokenSvc, deps.Realm, deps.Logger)
	cardHandler := NewCardHandler(deps.CardSvc)

	cards := r.Group("/cashcards", authn, middleware.RequireRole(domain.RoleCardOwner))
	{
		cards.GET("", rl("cards"), cardHandler.List)
		cards.POST("", rl("cards"), cardHandler.Create)
		cards.GET("/:id", rl("cards"), cardHandler.FindByID)
		cards.PUT("/:id", rl("cards"), cardHandler.Update)
		cards.DELETE("/:id", rl("cards"), cardHandler.Delete)
	}

	return r
}
