package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/controllers"
)

func SetupUserRoutes(r *gin.Engine, uc *controllers.UserController) {
	grp := r.Group("/users")
	{
		grp.POST("/user/signup", uc.Signup)
		grp.POST("/user/login", uc.Login)
	}
}
