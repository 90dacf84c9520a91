package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
)

// BlogService owns the blog lifecycle and its derived counters. Counters are
// only ever touched through atomic field increments issued by the comment and
// reaction services; direct blog updates replace title/content and nothing
// else.
type BlogService struct {
	store store.Store
	cache *BlogCache
}

func NewBlogService(st store.Store, cache *BlogCache) *BlogService {
	return &BlogService{store: st, cache: cache}
}

func (s *BlogService) Create(ctx context.Context, title, content string, author *models.User) (*models.Blog, error) {
	blog := &models.Blog{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		CreatedBy: author.Name,
		UserID:    author.ID,
	}
	if err := s.store.InsertOne(ctx, models.CollBlogs, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, blogID primitive.ObjectID, title, content string, callerID primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := s.store.FindOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, &blog)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	if blog.UserID != callerID {
		return nil, ErrNotOwner
	}
	_, err = s.store.UpdateOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, bson.M{
		"$set": bson.M{"title": title, "content": content},
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, blogID)
	blog.Title = title
	blog.Content = content
	return &blog, nil
}

// Delete removes the blog and cascades to its comments and reactions so no
// orphan child records survive.
func (s *BlogService) Delete(ctx context.Context, blogID primitive.ObjectID, callerID primitive.ObjectID) error {
	var blog models.Blog
	err := s.store.FindOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, &blog)
	if errors.Is(err, store.ErrNotFound) {
		return ErrBlogNotFound
	}
	if err != nil {
		return err
	}
	if blog.UserID != callerID {
		return ErrNotOwner
	}
	if _, err := s.store.DeleteOne(ctx, models.CollBlogs, bson.M{"_id": blogID}); err != nil {
		return err
	}
	if _, err := s.store.DeleteMany(ctx, models.CollComments, bson.M{"blog_id": blogID}); err != nil {
		return err
	}
	if _, err := s.store.DeleteMany(ctx, models.CollReactions, bson.M{"blog_id": blogID}); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, blogID)
	return nil
}

// List returns a summary view (content omitted), newest first.
func (s *BlogService) List(ctx context.Context, createdBy string, page, perPage int) ([]models.Blog, *models.Pagination, error) {
	filter := bson.M{}
	if createdBy != "" {
		filter["created_by"] = createdBy
	}
	opts := store.FindOptions{
		Sort:       bson.D{{Key: "created_at", Value: -1}},
		Skip:       int64(page-1) * int64(perPage),
		Limit:      int64(perPage),
		Projection: bson.M{"content": 0},
	}
	blogs := []models.Blog{}
	if err := s.store.Find(ctx, models.CollBlogs, filter, opts, &blogs); err != nil {
		return nil, nil, err
	}
	total, err := s.store.Count(ctx, models.CollBlogs, filter)
	if err != nil {
		return nil, nil, err
	}
	pagination := &models.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + int64(perPage) - 1) / int64(perPage),
		TotalCount: total,
	}
	return blogs, pagination, nil
}

func (s *BlogService) GetDetail(ctx context.Context, blogID primitive.ObjectID) (*models.Blog, error) {
	if blog, ok := s.cache.Get(ctx, blogID); ok {
		return blog, nil
	}
	var blog models.Blog
	err := s.store.FindOne(ctx, models.CollBlogs, bson.M{"_id": blogID}, &blog)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, &blog)
	return &blog, nil
}
