package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/00AR/blog-app/models"
	"github.com/00AR/blog-app/store"
)

func newTestUser(name string) *models.User {
	return &models.User{ID: primitive.NewObjectID(), Name: name, Email: name + "@example.com"}
}

func newBlogFixture(t *testing.T) (*BlogService, *store.Memory, *models.User) {
	t.Helper()
	st := store.NewMemory()
	return NewBlogService(st, nil), st, newTestUser("alice")
}

func TestBlogCreateAndDetail(t *testing.T) {
	svc, _, alice := newBlogFixture(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, "Test Blog", "Test blog content", alice)
	assert.NoError(t, err)
	assert.False(t, blog.ID.IsZero())
	assert.Equal(t, "alice", blog.CreatedBy)

	got, err := svc.GetDetail(ctx, blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test Blog", got.Title)
	assert.Equal(t, "Test blog content", got.Content)
	assert.Equal(t, int64(0), got.Likes)
	assert.Equal(t, int64(0), got.Dislikes)
	assert.Equal(t, int64(0), got.Comments)
}

func TestBlogDetailNotFound(t *testing.T) {
	svc, _, _ := newBlogFixture(t)

	_, err := svc.GetDetail(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestBlogUpdate(t *testing.T) {
	svc, _, alice := newBlogFixture(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, "Test Blog", "Test blog content", alice)
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, blog.ID, "Updated title", "Updated blog content", alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)

	got, err := svc.GetDetail(ctx, blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, "Updated blog content", got.Content)
	// counters untouched by content updates
	assert.Equal(t, int64(0), got.Likes)
	assert.Equal(t, int64(0), got.Comments)
}

func TestBlogUpdateGates(t *testing.T) {
	svc, _, alice := newBlogFixture(t)
	ctx := context.Background()

	blog, err := svc.Create(ctx, "Test Blog", "Test blog content", alice)
	assert.NoError(t, err)

	_, err = svc.Update(ctx, primitive.NewObjectID(), "x", "y", alice.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)

	mallory := newTestUser("mallory")
	_, err = svc.Update(ctx, blog.ID, "x", "y", mallory.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestBlogDeleteCascades(t *testing.T) {
	st := store.NewMemory()
	blogs := NewBlogService(st, nil)
	comments := NewCommentService(st, nil)
	reactions := NewReactionService(st, nil)
	alice := newTestUser("alice")
	bob := newTestUser("bob")
	ctx := context.Background()

	blog, err := blogs.Create(ctx, "Test Blog", "Test blog content", alice)
	assert.NoError(t, err)
	_, err = comments.Add(ctx, blog.ID, "test comment", bob.ID)
	assert.NoError(t, err)
	_, err = reactions.React(ctx, blog.ID, models.ReactionLikes, bob.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, blogs.Delete(ctx, blog.ID, bob.ID), ErrNotOwner)
	assert.NoError(t, blogs.Delete(ctx, blog.ID, alice.ID))

	_, err = blogs.GetDetail(ctx, blog.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)

	nComments, err := st.Count(ctx, models.CollComments, bson.M{"blog_id": blog.ID})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), nComments)
	nReactions, err := st.Count(ctx, models.CollReactions, bson.M{"blog_id": blog.ID})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), nReactions)
}

func TestBlogListPaginationAndSummary(t *testing.T) {
	svc, _, alice := newBlogFixture(t)
	bob := newTestUser("bob")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		author := alice
		if i == 4 {
			author = bob
		}
		_, err := svc.Create(ctx, "Blog", "some content", author)
		assert.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // distinct created_at for ordering
	}

	items, pagination, err := svc.List(ctx, "", 1, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(5), pagination.TotalCount)
	assert.Equal(t, int64(3), pagination.TotalPages) // ceiling of 5/2
	// summary view omits content
	assert.Empty(t, items[0].Content)
	// newest first
	assert.Equal(t, "bob", items[0].CreatedBy)

	// exact multiple: 4 blogs by alice, per_page 2 -> 2 pages
	_, pagination, err = svc.List(ctx, "alice", 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), pagination.TotalCount)
	assert.Equal(t, int64(2), pagination.TotalPages)

	items, _, err = svc.List(ctx, "alice", 3, 2)
	assert.NoError(t, err)
	assert.Len(t, items, 0)
}
