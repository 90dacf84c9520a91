package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/config"
	"github.com/00AR/blog-app/controllers"
	"github.com/00AR/blog-app/middleware"
	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/store"
)

// SetupRouter builds the gin.Engine with all routes registered. The store
// client and cache are injected so tests can run the full surface against
// the in-memory store.
func SetupRouter(cfg *config.Config, st store.Store, cache *services.BlogCache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware before routes
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	userService := services.NewUserService(st)
	blogService := services.NewBlogService(st, cache)
	commentService := services.NewCommentService(st, cache)
	reactionService := services.NewReactionService(st, cache)

	userController := controllers.NewUserController(userService, cfg.JWTSecret)
	blogController := controllers.NewBlogController(blogService, userService)
	commentController := controllers.NewCommentController(commentService)
	reactionController := controllers.NewReactionController(reactionService)

	SetupUserRoutes(r, userController)
	SetupBlogRoutes(r, cfg.JWTSecret, blogController, commentController, reactionController)

	return r
}
