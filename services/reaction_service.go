package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
	"github.com/00AR/blog-app/utils"
)

// ReactionService enforces at most one live reaction per (user, blog) pair.
// Reactions are never switched in place; changing kind is undo then re-react.
type ReactionService struct {
	store store.Store
	cache *BlogCache
}

func NewReactionService(st store.Store, cache *BlogCache) *ReactionService {
	return &ReactionService{store: st, cache: cache}
}

func (s *ReactionService) React(ctx context.Context, blogID primitive.ObjectID, reactionType string, userID primitive.ObjectID) (*models.Reaction, error) {
	n, err := s.store.Count(ctx, models.CollBlogs, bson.M{"_id": blogID})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrBlogNotFound
	}
	existing, err := s.store.Count(ctx, models.CollReactions, bson.M{"blog_id": blogID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyReacted
	}
	reaction := &models.Reaction{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		BlogID:       blogID,
		ReactionType: reactionType,
	}
	err = s.store.InsertOne(ctx, models.CollReactions, reaction)
	if errors.Is(err, store.ErrDuplicateKey) {
		// concurrent reaction won the unique-index race
		return nil, ErrAlreadyReacted
	}
	if err != nil {
		return nil, err
	}
	_, err = s.store.UpdateOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, bson.M{
		"$inc": bson.M{reactionType: 1},
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, blogID)
	return reaction, nil
}

func (s *ReactionService) Undo(ctx context.Context, blogID primitive.ObjectID, reactionType string, userID primitive.ObjectID) error {
	var reaction models.Reaction
	err := s.store.FindOne(ctx, models.CollReactions, bson.M{
		"blog_id":       blogID,
		"user_id":       userID,
		"reaction_type": reactionType,
	}, &reaction)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotReacted
	}
	if err != nil {
		return err
	}
	if _, err := s.store.DeleteOne(ctx, models.CollReactions, bson.M{"_id": reaction.ID}); err != nil {
		return err
	}
	matched, err := s.store.UpdateOne(ctx, models.CollBlogs,
		bson.M{"_id": blogID, reactionType: bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{reactionType: -1}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		utils.LogError(fmt.Errorf("%s counter not decremented for blog %s", reactionType, blogID.Hex()), "ReactionService.Undo")
	}
	s.cache.Invalidate(ctx, blogID)
	return nil
}
