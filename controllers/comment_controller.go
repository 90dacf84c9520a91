package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/utils"
)

type commentPayload struct {
	Comment string `json:"comment" binding:"required"`
}

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// POST /blogs/:id/comments
func (cc *CommentController) Add(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req commentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	comment, err := cc.comments.Add(c.Request.Context(), blogID, req.Comment, userID)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case err != nil:
		utils.LogError(err, "CommentController.Add")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
	default:
		c.JSON(http.StatusOK, comment)
	}
}

// PUT /blogs/:id/comments/:cid
func (cc *CommentController) Update(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	commentID, ok := pathID(c, "cid")
	if !ok {
		return
	}
	var req commentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	comment, err := cc.comments.Update(c.Request.Context(), commentID, req.Comment, userID)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No such comment."})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot update this comment."})
	case err != nil:
		utils.LogError(err, "CommentController.Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
	default:
		c.JSON(http.StatusOK, comment)
	}
}

// DELETE /blogs/:id/comments/:cid
func (cc *CommentController) Delete(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	commentID, ok := pathID(c, "cid")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	err := cc.comments.Delete(c.Request.Context(), commentID, userID)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No such comment."})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not authorized to delete this comment"})
	case err != nil:
		utils.LogError(err, "CommentController.Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// GET /blogs/:id/comments?page=&per_page=
func (cc *CommentController) List(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, perPage := pageParams(c)
	comments, err := cc.comments.List(c.Request.Context(), blogID, page, perPage)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case err != nil:
		utils.LogError(err, "CommentController.List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch comments"})
	default:
		c.JSON(http.StatusOK, comments)
	}
}
