package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
	"github.com/00AR/blog-app/utils"
)

// CommentService owns comment lifecycle and keeps the parent blog's comments
// counter in step. Insert+increment is not a single transaction; a failed
// increment removes the just-inserted comment, and the reconciler cron
// repairs any drift that still slips through.
type CommentService struct {
	store store.Store
	cache *BlogCache
}

func NewCommentService(st store.Store, cache *BlogCache) *CommentService {
	return &CommentService{store: st, cache: cache}
}

func (s *CommentService) Add(ctx context.Context, blogID primitive.ObjectID, text string, authorID primitive.ObjectID) (*models.Comment, error) {
	n, err := s.store.Count(ctx, models.CollBlogs, bson.M{"_id": blogID})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrBlogNotFound
	}
	comment := &models.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    authorID,
		BlogID:    blogID,
		Comment:   text,
		CreatedAt: time.Now(),
	}
	if err := s.store.InsertOne(ctx, models.CollComments, comment); err != nil {
		return nil, err
	}
	matched, err := s.store.UpdateOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, bson.M{
		"$inc": bson.M{"comments": 1},
	})
	if err != nil || matched == 0 {
		// blog vanished or the store failed between the two writes
		s.store.DeleteOne(ctx, models.CollComments, bson.M{"_id": comment.ID})
		if err != nil {
			return nil, err
		}
		return nil, ErrBlogNotFound
	}
	s.cache.Invalidate(ctx, blogID)
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID primitive.ObjectID, text string, callerID primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := s.store.FindOne(ctx, models.CollComments, bson.M{"_id": commentID}, &comment)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, ErrNotOwner
	}
	_, err = s.store.UpdateOne(ctx, models.CollComments, bson.M{"_id": commentID}, bson.M{
		"$set": bson.M{"comment": text},
	})
	if err != nil {
		return nil, err
	}
	comment.Comment = text
	return &comment, nil
}

// Delete decrements the counter of the comment's own stored parent blog, not
// whatever blog id arrived in the request path.
func (s *CommentService) Delete(ctx context.Context, commentID primitive.ObjectID, callerID primitive.ObjectID) error {
	var comment models.Comment
	err := s.store.FindOne(ctx, models.CollComments, bson.M{"_id": commentID}, &comment)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		return ErrNotOwner
	}
	matched, err := s.store.UpdateOne(ctx, models.CollBlogs,
		bson.M{"_id": comment.BlogID, "comments": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"comments": -1}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		// counter would have gone negative or the blog is gone; the comment
		// is removed either way and the reconciler settles the counter
		utils.LogError(fmt.Errorf("comments counter not decremented for blog %s", comment.BlogID.Hex()), "CommentService.Delete")
	}
	if _, err := s.store.DeleteOne(ctx, models.CollComments, bson.M{"_id": commentID}); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, comment.BlogID)
	return nil
}

// List returns the blog's comments, newest first.
func (s *CommentService) List(ctx context.Context, blogID primitive.ObjectID, page, perPage int) ([]models.Comment, error) {
	n, err := s.store.Count(ctx, models.CollBlogs, bson.M{"_id": blogID})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrBlogNotFound
	}
	opts := store.FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Skip:  int64(page-1) * int64(perPage),
		Limit: int64(perPage),
	}
	comments := []models.Comment{}
	if err := s.store.Find(ctx, models.CollComments, bson.M{"blog_id": blogID}, opts, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
