package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
	"github.com/00AR/blog-app/utils"
)

// StartReconcileCron schedules periodic counter reconciliation. The comment
// and reaction writes span two documents without a transaction, so a partial
// failure can leave a counter out of step with the child collections; this
// cron settles them back to the live counts.
func StartReconcileCron(st store.Store, cache *BlogCache, spec string) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		fixed, err := ReconcileCounters(context.Background(), st, cache)
		if err != nil {
			utils.LogError(err, "ReconcileCounters")
			return
		}
		if fixed > 0 {
			log.Printf("reconcile: repaired counters on %d blog(s)", fixed)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule counter reconciler: %v", err)
	}
	c.Start()
	return c
}

// ReconcileCounters recounts live comments and reactions for every blog and
// rewrites any counter that drifted. Returns the number of blogs fixed.
func ReconcileCounters(ctx context.Context, st store.Store, cache *BlogCache) (int, error) {
	var blogs []models.Blog
	if err := st.Find(ctx, models.CollBlogs, bson.M{}, store.FindOptions{}, &blogs); err != nil {
		return 0, err
	}
	fixed := 0
	for i := range blogs {
		blog := &blogs[i]
		comments, err := st.Count(ctx, models.CollComments, bson.M{"blog_id": blog.ID})
		if err != nil {
			return fixed, err
		}
		likes, err := st.Count(ctx, models.CollReactions, bson.M{"blog_id": blog.ID, "reaction_type": models.ReactionLikes})
		if err != nil {
			return fixed, err
		}
		dislikes, err := st.Count(ctx, models.CollReactions, bson.M{"blog_id": blog.ID, "reaction_type": models.ReactionDislikes})
		if err != nil {
			return fixed, err
		}

		set := bson.M{}
		if comments != blog.Comments {
			set["comments"] = comments
		}
		if likes != blog.Likes {
			set["likes"] = likes
		}
		if dislikes != blog.Dislikes {
			set["dislikes"] = dislikes
		}
		if len(set) == 0 {
			continue
		}
		if _, err := st.UpdateOne(ctx, models.CollBlogs, bson.M{"_id": blog.ID}, bson.M{"$set": set}); err != nil {
			return fixed, err
		}
		cache.Invalidate(ctx, blog.ID)
		log.Printf("reconcile: blog %s counters corrected %v", blog.ID.Hex(), set)
		fixed++
	}
	return fixed, nil
}
