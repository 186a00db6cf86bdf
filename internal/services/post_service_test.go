package services

import (
	"context"
	"testing"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	svc   *PostService
	store *memory.Store
	ann   models.User
	bob   models.User
	admin models.User
}

func newPostFixture(t *testing.T) postFixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	ann, err := store.UserRepo().Create(ctx, "Ann Lee", "ann@x.com", "x", models.RoleUser)
	require.NoError(t, err)
	bob, err := store.UserRepo().Create(ctx, "Bob Last", "bob@x.com", "x", models.RoleUser)
	require.NoError(t, err)
	admin, err := store.UserRepo().Create(ctx, "Admin", "admin@x.com", "x", models.RoleAdmin)
	require.NoError(t, err)

	return postFixture{
		svc:   NewPostService(store.PostRepo(), store.CommentRepo()),
		store: store,
		ann:   ann, bob: bob, admin: admin,
	}
}

func TestCreatePostValidation(t *testing.T) {
	f := newPostFixture(t)
	_, err := f.svc.Create(context.Background(), f.ann, "  ", "", "")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
	assert.Len(t, ae.Details, 2, "title and content violations reported together")
}

func TestPostOwnershipRules(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.Create(ctx, f.ann, "Title", "Content", "")
	require.NoError(t, err)
	require.NotNil(t, post.Author)
	assert.Equal(t, f.ann.ID, post.Author.ID)

	title := "Edited"

	// owner can update
	got, err := f.svc.Update(ctx, f.ann, post.ID, PostUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)

	// non-owner, non-admin cannot update or delete
	_, err = f.svc.Update(ctx, f.bob, post.ID, PostUpdate{Title: &title})
	assert.Equal(t, 403, errStatus(t, err))
	err = f.svc.Delete(ctx, f.bob, post.ID)
	assert.Equal(t, 403, errStatus(t, err))

	// admin can, regardless of ownership
	_, err = f.svc.Update(ctx, f.admin, post.ID, PostUpdate{Title: &title})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, f.admin, post.ID))
}

func TestMissingPostIs404ForEveryRole(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	title := "x"

	for _, principal := range []models.User{f.ann, f.admin} {
		_, err := f.svc.Get(ctx, "missing")
		assert.Equal(t, 404, errStatus(t, err))
		_, err = f.svc.Update(ctx, principal, "missing", PostUpdate{Title: &title})
		assert.Equal(t, 404, errStatus(t, err))
		err = f.svc.Delete(ctx, principal, "missing")
		assert.Equal(t, 404, errStatus(t, err))
	}
}

func TestToggleLikeSetSemantics(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.Create(ctx, f.ann, "Title", "Content", "")
	require.NoError(t, err)

	got, err := f.svc.ToggleLike(ctx, f.bob, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	got, err = f.svc.ToggleLike(ctx, f.ann, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikeCount)

	// a second toggle removes the like instead of duplicating it
	got, err = f.svc.ToggleLike(ctx, f.bob, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, f.ann.ID, got.Likes[0].ID)
}

func TestCommentLifecycle(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.Create(ctx, f.ann, "Title", "Content", "")
	require.NoError(t, err)

	_, err = f.svc.AddComment(ctx, f.bob, post.ID, "   ")
	assert.Equal(t, 400, errStatus(t, err))

	got, err := f.svc.AddComment(ctx, f.bob, post.ID, "first!")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	comment := got.Comments[0]
	assert.Equal(t, f.bob.ID, comment.AuthorID)

	// the post's author does not own the comment
	_, err = f.svc.DeleteComment(ctx, f.ann, post.ID, comment.ID)
	assert.Equal(t, 403, errStatus(t, err))

	// unknown comment id under an existing post
	_, err = f.svc.DeleteComment(ctx, f.bob, post.ID, "missing")
	assert.Equal(t, 404, errStatus(t, err))

	got, err = f.svc.DeleteComment(ctx, f.bob, post.ID, comment.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestDeletePostCascadesComments(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.Create(ctx, f.ann, "Title", "Content", "")
	require.NoError(t, err)
	got, err := f.svc.AddComment(ctx, f.bob, post.ID, "first!")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.ann, post.ID))

	_, err = f.store.CommentRepo().GetByID(ctx, got.Comments[0].ID)
	assert.Equal(t, 404, errStatus(t, err))
}

func TestListPagination(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	for _, title := range []string{"alpha", "beta", "gamma"} {
		_, err := f.svc.Create(ctx, f.ann, title, "content "+title, "")
		require.NoError(t, err)
	}

	page, err := f.svc.List(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	// newest first
	assert.Equal(t, "gamma", page.Items[0].Title)

	page, err = f.svc.List(ctx, "beta", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "beta", page.Items[0].Title)
}
