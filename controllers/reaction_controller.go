package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/services"
	"github.com/00AR/blog-app/utils"
)

type ReactionController struct {
	reactions *services.ReactionService
}

func NewReactionController(reactions *services.ReactionService) *ReactionController {
	return &ReactionController{reactions: reactions}
}

// POST /blogs/:id/:reaction_type
func (rc *ReactionController) React(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reactionType := c.Param("reaction_type")
	if !models.ValidReactionType(reactionType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reaction type"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reaction, err := rc.reactions.React(c.Request.Context(), blogID, reactionType, userID)
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Blog with given id does not exists!"})
	case errors.Is(err, services.ErrAlreadyReacted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reacted. Please undo reaction and try again."})
	case err != nil:
		utils.LogError(err, "ReactionController.React")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to react"})
	default:
		c.JSON(http.StatusOK, reaction)
	}
}

// DELETE /blogs/:id/:reaction_type
func (rc *ReactionController) Undo(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reactionType := c.Param("reaction_type")
	if !models.ValidReactionType(reactionType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reaction type"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	err := rc.reactions.Undo(c.Request.Context(), blogID, reactionType, userID)
	switch {
	case errors.Is(err, services.ErrNotReacted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have not reacted yet."})
	case err != nil:
		utils.LogError(err, "ReactionController.Undo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to undo reaction"})
	default:
		c.Status(http.StatusNoContent)
	}
}
