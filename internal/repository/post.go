package repository

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (*models.Post, bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	snapshots *Snapshots
}

// NewPostRepository creates a new post repository
func NewPostRepository(snapshots *Snapshots) PostRepository {
	return &postRepository{snapshots: snapshots}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.snapshots.update(ctx, func(snap *store.Snapshot) error {
		snap.Posts = append(snap.Posts, *post)
		return nil
	})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var found *models.Post
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Posts {
			if snap.Posts[i].ID == id {
				p := snap.Posts[i]
				found = &p
				return nil
			}
		}
		return models.NewNotFoundError("Post", id)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns every post in snapshot order. Filtering, sorting and paging
// belong to the query pipeline, which operates on the full collection.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		posts = make([]models.Post, len(snap.Posts))
		copy(posts, snap.Posts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.snapshots.update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Posts {
			if snap.Posts[i].ID == post.ID {
				snap.Posts[i] = *post
				return nil
			}
		}
		return models.NewNotFoundError("Post", post.ID)
	})
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.snapshots.update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Posts {
			if snap.Posts[i].ID == id {
				snap.Posts = append(snap.Posts[:i], snap.Posts[i+1:]...)
				return nil
			}
		}
		return models.NewNotFoundError("Post", id)
	})
}

// ToggleLike flips the user's like on the post under the store lock and
// returns the updated post plus the resulting like state. Likes never go
// below zero and always equal the size of the likedBy set.
func (r *postRepository) ToggleLike(ctx context.Context, id, userID string) (*models.Post, bool, error) {
	var (
		updated *models.Post
		isLiked bool
	)
	err := r.snapshots.update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Posts {
			if snap.Posts[i].ID != id {
				continue
			}
			post := &snap.Posts[i]
			if post.LikedByUser(userID) {
				kept := post.LikedBy[:0]
				for _, uid := range post.LikedBy {
					if uid != userID {
						kept = append(kept, uid)
					}
				}
				post.LikedBy = kept
				isLiked = false
			} else {
				post.LikedBy = append(post.LikedBy, userID)
				isLiked = true
			}
			post.Likes = len(post.LikedBy)
			if post.Likes < 0 {
				post.Likes = 0
			}
			p := *post
			updated = &p
			return nil
		}
		return models.NewNotFoundError("Post", id)
	})
	if err != nil {
		return nil, false, err
	}
	return updated, isLiked, nil
}
