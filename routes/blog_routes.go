package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/controllers"
	"github.com/00AR/blog-app/middleware"
)

func SetupBlogRoutes(r *gin.Engine, jwtSecret string, bc *controllers.BlogController, cc *controllers.CommentController, rc *controllers.ReactionController) {
	public := r.Group("/blogs")
	{
		public.GET("", bc.List)
		public.GET("/:id", bc.GetByID)
		public.GET("/:id/comments", cc.List)
	}

	authed := r.Group("/blogs", middleware.JWTAuthMiddleware(jwtSecret))
	{
		authed.POST("", bc.Create)
		authed.PUT("/:id", bc.Update)
		authed.DELETE("/:id", bc.Delete)

		authed.POST("/:id/comments", cc.Add)
		authed.PUT("/:id/comments/:cid", cc.Update)
		authed.DELETE("/:id/comments/:cid", cc.Delete)

		// likes/dislikes; the static /comments segment wins over the param
		authed.POST("/:id/:reaction_type", rc.React)
		authed.DELETE("/:id/:reaction_type", rc.Undo)
	}
}
