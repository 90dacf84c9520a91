package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ReactionLikes    = "likes"
	ReactionDislikes = "dislikes"
)

// Reaction records a single like or dislike. At most one live reaction may
// exist per (user, blog) pair regardless of type; switching requires undo
// then re-react.
type Reaction struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	BlogID       primitive.ObjectID `bson:"blog_id" json:"blog_id"`
	ReactionType string             `bson:"reaction_type" json:"reaction_type"`
}

func ValidReactionType(s string) bool {
	return s == ReactionLikes || s == ReactionDislikes
}
