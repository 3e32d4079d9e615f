package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shoply/server/config"
	"github.com/shoply/server/controllers"
	"github.com/shoply/server/middleware"
	"github.com/shoply/server/store"
	"github.com/shoply/server/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(users *store.UserStore, posts *store.PostStore) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.Ginzap(utils.Logger))
	r.Use(utils.RecoveryWithZap(utils.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message":   "Server is running!",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	authController := controllers.NewAuthController(users)
	postController := controllers.NewPostController(posts)
	contactController := controllers.NewContactController(cfg.ContactWebhookURL)

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.GET("/users", middleware.AuthRequired(), authController.ListUsers)
	authGroup.DELETE("/users/:id", middleware.AuthRequired(), authController.DeleteUser)

	postsGroup := r.Group("/api/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.POST("", middleware.AuthRequired(), postController.CreatePost)

	r.POST("/api/contact", contactController.Relay)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "Route not found")
	})

	return r
}
