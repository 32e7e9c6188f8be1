package repository

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsersByID(ctx context.Context) (map[string]models.User, error)
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository
type userRepository struct {
	snapshots *Snapshots
}

// NewUserRepository creates a new user repository
func NewUserRepository(snapshots *Snapshots) UserRepository {
	return &userRepository{snapshots: snapshots}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.snapshots.update(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].Email == user.Email {
				return models.NewConflictError("User already exists")
			}
		}
		snap.Users = append(snap.Users, *user)
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var found *models.User
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				u := snap.Users[i]
				found = &u
				return nil
			}
		}
		return models.NewNotFoundError("User", id)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetByEmail returns nil without an error when no user matches, so callers
// can treat absence as a normal outcome.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var found *models.User
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].Email == email {
				u := snap.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// UsersByID builds the id-to-user lookup the search pipeline uses for
// creator joins.
func (r *userRepository) UsersByID(ctx context.Context) (map[string]models.User, error) {
	var users map[string]models.User
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		users = make(map[string]models.User, len(snap.Users))
		for _, u := range snap.Users {
			users[u.ID] = u
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.snapshots.view(ctx, func(snap *store.Snapshot) error {
		n = len(snap.Users)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
