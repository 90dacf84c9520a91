package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
)

// BlogCache keeps rendered blog details in redis. A nil cache or nil client
// disables caching; every method tolerates that, so tests and degraded
// deployments run without redis.
type BlogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBlogCache(rdb *redis.Client, ttl time.Duration) *BlogCache {
	return &BlogCache{rdb: rdb, ttl: ttl}
}

func (bc *BlogCache) enabled() bool {
	return bc != nil && bc.rdb != nil
}

func blogKey(id primitive.ObjectID) string {
	return "blog:" + id.Hex()
}

func (bc *BlogCache) Get(ctx context.Context, id primitive.ObjectID) (*models.Blog, bool) {
	if !bc.enabled() {
		return nil, false
	}
	raw, err := bc.rdb.Get(ctx, blogKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var blog models.Blog
	if err := json.Unmarshal([]byte(raw), &blog); err != nil {
		return nil, false
	}
	return &blog, true
}

func (bc *BlogCache) Set(ctx context.Context, blog *models.Blog) {
	if !bc.enabled() {
		return
	}
	raw, err := json.Marshal(blog)
	if err != nil {
		return
	}
	bc.rdb.Set(ctx, blogKey(blog.ID), raw, bc.ttl)
}

func (bc *BlogCache) Invalidate(ctx context.Context, id primitive.ObjectID) {
	if !bc.enabled() {
		return
	}
	bc.rdb.Del(ctx, blogKey(id))
}
