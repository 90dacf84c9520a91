package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment keeps a weak back-reference to its blog via BlogID.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	BlogID    primitive.ObjectID `bson:"blog_id" json:"blog_id"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
