package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the document store.
const (
	CollBlogs     = "blogs"
	CollComments  = "comments"
	CollReactions = "user_reactions"
	CollUsers     = "users"
)

// Blog carries the post content plus the derived counters. The counters
// mirror the live records in the comments and user_reactions collections.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content,omitempty" json:"content,omitempty"`
	Likes     int64              `bson:"likes" json:"likes"`
	Dislikes  int64              `bson:"dislikes" json:"dislikes"`
	Comments  int64              `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	UserID    primitive.ObjectID `bson:"user_id" json:"-"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
}
