package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/utils"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, "HTTP Request")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		c.Abort()
	})
}
