package repository

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/content"
	"inkwell/internal/models"
	"inkwell/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostRepo(t *testing.T) PostRepository {
	t.Helper()
	return NewPostRepository(NewSnapshots(store.NewMemoryStore()))
}

func makePost(id, title, createdBy string) *models.Post {
	now := time.Now().UTC()
	return &models.Post{
		ID:        id,
		Title:     title,
		Content:   content.FromString("body of " + title),
		LikedBy:   []string{},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostRepositoryCRUD(t *testing.T) {
	repo := newPostRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makePost("p1", "First", "u1")))
	require.NoError(t, repo.Create(ctx, makePost("p2", "Second", "u2")))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	_, err = repo.GetByID(ctx, "missing")
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	got.Title = "First, revised"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "First, revised", got.Title)

	require.NoError(t, repo.Delete(ctx, "p1"))
	_, err = repo.GetByID(ctx, "p1")
	assert.Error(t, err)

	err = repo.Delete(ctx, "p1")
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)

	posts, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostRepositoryUpdateMissing(t *testing.T) {
	repo := newPostRepo(t)
	err := repo.Update(context.Background(), makePost("ghost", "Ghost", "u1"))
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)
}

func TestToggleLike(t *testing.T) {
	repo := newPostRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, makePost("p1", "First", "u1")))

	post, liked, err := repo.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, []string{"u2"}, post.LikedBy)

	// second user piles on
	post, liked, err = repo.ToggleLike(ctx, "p1", "u3")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 2, post.Likes)

	// toggling again removes only that user's like
	post, liked, err = repo.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, []string{"u3"}, post.LikedBy)

	_, _, err = repo.ToggleLike(ctx, "missing", "u2")
	assert.Error(t, err)
}

func TestToggleLikeTwiceIsIdentity(t *testing.T) {
	repo := newPostRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, makePost("p1", "First", "u1")))

	before, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)

	_, _, err = repo.ToggleLike(ctx, "p1", "u9")
	require.NoError(t, err)
	_, _, err = repo.ToggleLike(ctx, "p1", "u9")
	require.NoError(t, err)

	after, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, before.Likes, after.Likes)
	assert.Equal(t, before.LikedBy, after.LikedBy)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(NewSnapshots(store.NewMemoryStore()))
	ctx := context.Background()

	user := &models.User{ID: "u1", Email: "a@example.com", Password: "hash", Name: "A"}
	require.NoError(t, repo.Create(ctx, user))

	// duplicate email conflicts
	err := repo.Create(ctx, &models.User{ID: "u2", Email: "a@example.com"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", err.(*models.AppError).Code)

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = repo.GetByID(ctx, "ghost")
	assert.Error(t, err)

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	// absence is not an error
	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := repo.UsersByID(ctx)
	require.NoError(t, err)
	assert.Contains(t, byID, "u1")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
