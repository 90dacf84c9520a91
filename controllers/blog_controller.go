package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/utils"
)

type blogPayload struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type BlogController struct {
	blogs *services.BlogService
	users *services.UserService
}

func NewBlogController(blogs *services.BlogService, users *services.UserService) *BlogController {
	return &BlogController{blogs: blogs, users: users}
}

// POST /blogs
func (bc *BlogController) Create(c *gin.Context) {
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	// created_by carries the display name; ownership checks use the id
	author, err := bc.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
			return
		}
		utils.LogError(err, "BlogController.Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create blog"})
		return
	}
	blog, err := bc.blogs.Create(c.Request.Context(), req.Title, req.Content, author)
	if err != nil {
		utils.LogError(err, "BlogController.Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create blog"})
		return
	}
	c.JSON(http.StatusOK, blog)
}

// PUT /blogs/:id
func (bc *BlogController) Update(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req blogPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	blog, err := bc.blogs.Update(c.Request.Context(), blogID, req.Title, req.Content, userID)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this blog"})
	case err != nil:
		utils.LogError(err, "BlogController.Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update blog"})
	default:
		c.JSON(http.StatusOK, blog)
	}
}

// DELETE /blogs/:id
func (bc *BlogController) Delete(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	err := bc.blogs.Delete(c.Request.Context(), blogID, userID)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this blog"})
	case err != nil:
		utils.LogError(err, "BlogController.Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete blog"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /blogs?created_by=&page=&per_page=
func (bc *BlogController) List(c *gin.Context) {
	page, perPage := pageParams(c)
	blogs, pagination, err := bc.blogs.List(c.Request.Context(), c.Query("created_by"), page, perPage)
	if err != nil {
		utils.LogError(err, "BlogController.List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": blogs, "pagination": pagination})
}

// GET /blogs/:id
func (bc *BlogController) GetByID(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	blog, err := bc.blogs.GetDetail(c.Request.Context(), blogID)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case err != nil:
		utils.LogError(err, "BlogController.GetByID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog"})
	default:
		c.JSON(http.StatusOK, blog)
	}
}
