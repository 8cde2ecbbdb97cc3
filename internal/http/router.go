// Package httpapi wires the Gin engine to the intake, admin, catalog and
// content services and installs the cross-cutting middleware: tracing,
// correlation ids, redacted logging, panic recovery, body limits,
// compression, metrics, session attachment, idempotency, rate limiting, CORS
// and security headers.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/bilacert/bilacert-api/docs"
	"github.com/bilacert/bilacert-api/internal/auth"
	"github.com/bilacert/bilacert-api/internal/config"
	"github.com/bilacert/bilacert-api/internal/http/handlers"
	"github.com/bilacert/bilacert-api/internal/http/middleware"
	"github.com/bilacert/bilacert-api/internal/repo"
	"github.com/bilacert/bilacert-api/internal/services"
)

var (
	corsMethods = []string{"GET", "POST", "OPTIONS"}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey, "X-Request-ID"}
	corsExpose  = []string{"X-Request-ID", "ETag", "Retry-After", "Idempotent-Replay"}
)

// RegisterRoutes attaches middleware and endpoints to r.
//
// Middleware order:
//  1. OpenTelemetry
//  2. RequestID
//  3. RedactingLogger
//  4. Recovery (after the logger so panics carry the request id)
//  5. CORS and security headers (before anything that can abort, so 4xx
//     responses stay readable cross-origin)
//  6. Body size limit
//  7. gzip
//  8. Metrics
//  9. Session (attach only)
//  10. Idempotency validator (before the limiters so replays bypass them)
//  11. Rate limiters: global per session/IP, stricter for intake POSTs
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	base := cfg.APIBasePath
	if base == "/" {
		base = ""
	}
	submissionsPath := base + "/submissions"
	contactsPath := base + "/contacts"

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{middleware.HeaderIdempotencyKey},
	}))
	r.Use(middleware.Recovery())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.Session(auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer), cfg.Auth.CookieName))

	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
			Scope: func(c *gin.Context) string {
				switch c.FullPath() {
				case submissionsPath:
					return string(services.DestinationSubmissions)
				case contactsPath:
					return string(services.DestinationContacts)
				}
				return ""
			},
		},
		func(ctx context.Context, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	r.Use(middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyBySessionOrIP()).Handler())
	intakeLimiter := middleware.NewRateLimiter(cfg.IntakeRateRPS, cfg.IntakeRateBurst, middleware.KeyBySessionOrIP()).
		Only(func(c *gin.Context) bool {
			if c.Request.Method != http.MethodPost {
				return false
			}
			p := c.FullPath()
			return p == submissionsPath || p == contactsPath
		})
	r.Use(intakeLimiter.Handler())

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", healthHandler(db))
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(
		&services.IntakeService{DB: db, IdempotencyTTL: cfg.IdempotencyTTL},
		&services.SubmissionReader{DB: db},
		&services.CatalogService{DB: db},
		&services.ContentService{DB: db},
	)

	api := r.Group(base)
	{
		// Intake
		api.POST("/submissions", h.CreateSubmission)
		api.POST("/contacts", h.CreateContact)

		// Staff reads
		api.GET("/submissions", middleware.NoStore(), h.FindSubmission)
		api.GET("/submissions/:id", middleware.NoStore(), h.GetSubmission)

		// Catalog
		api.GET("/services", h.ListServices)
		api.GET("/services/featured", h.ListFeaturedServices)
		api.GET("/services/slugs", h.ListServiceSlugs)
		api.GET("/services/search", h.SearchServices)
		api.GET("/services/:slug", h.GetService)

		// Content
		api.GET("/blog/posts", h.ListBlogPosts)
		api.GET("/blog/posts/:slug", h.GetBlogPost)
		api.GET("/blog/authors/:name", h.GetBlogAuthor)
		api.GET("/blog/slugs", h.ListBlogSlugs)
		api.GET("/testimonials", h.ListTestimonials)
	}
}

// corsMiddleware allows any origin without credentials when no allowlist is
// configured. With an allowlist, credentials are allowed so the admin client
// can send its session cookie.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  corsMethods,
		AllowHeaders:  corsHeaders,
		ExposeHeaders: corsExpose,
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
		cc.AllowCredentials = true
	}
	return cors.New(cc)
}

// healthHandler reports liveness plus a database ping.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			err = sqlDB.PingContext(ctx)
			cancel()
		}
		if err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health: database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}
