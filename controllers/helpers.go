package controllers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// pathID validates the 24-hex id pattern before anything reaches a service;
// a malformed id never touches the store.
func pathID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	raw := c.Param(param)
	if !idPattern.MatchString(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentUserID reads the authenticated user id placed by the jwt middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
		c.Abort()
		return primitive.NilObjectID, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, perPage := 1, 10
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			perPage = n
		}
	}
	return page, perPage
}
