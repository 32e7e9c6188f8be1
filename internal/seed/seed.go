// Package seed provides helpers to create demo and test data for the
// application. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/content"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminEmail and AdminPassword identify the built-in demo admin account.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
	AdminName     = "Admin User"
)

// Options controls how much data Run generates.
type Options struct {
	Users int
	Posts int
}

// Factory builds domain entities and persists them through the repositories.
type Factory struct {
	users repository.UserRepository
	posts repository.PostRepository
	rng   *rand.Rand
}

// NewFactory creates a Factory bound to the given repositories.
func NewFactory(users repository.UserRepository, posts repository.PostRepository) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users: users,
		posts: posts,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		Name:      gofakeit.Name(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post with a structured block
// document authored by the given user.
func (f *Factory) CreatePost(ctx context.Context, author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	created := time.Now().UTC().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour)
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     gofakeit.Sentence(5),
		Content:   f.fakeDocument(),
		Likes:     0,
		LikedBy:   []string{},
		CreatedBy: author.ID,
		CreatedAt: created,
		UpdatedAt: created,
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// fakeDocument builds a small structured document: a header, a couple of
// paragraphs, occasionally a list or quote.
func (f *Factory) fakeDocument() content.Document {
	blocks := []content.Block{
		block(content.BlockHeader, map[string]any{"text": gofakeit.Sentence(4), "level": 2}),
		block(content.BlockParagraph, map[string]any{"text": gofakeit.Paragraph(1, 3, 12, " ")}),
	}
	if f.rng.Intn(2) == 0 {
		blocks = append(blocks, block(content.BlockList, map[string]any{
			"style": "unordered",
			"items": []string{gofakeit.Sentence(3), gofakeit.Sentence(3), gofakeit.Sentence(3)},
		}))
	}
	if f.rng.Intn(3) == 0 {
		blocks = append(blocks, block(content.BlockQuote, map[string]any{
			"text":    gofakeit.Quote(),
			"caption": gofakeit.Name(),
		}))
	}
	blocks = append(blocks, block(content.BlockParagraph, map[string]any{"text": gofakeit.Paragraph(1, 2, 10, " ")}))
	return content.FromBlocks(blocks)
}

func block(kind string, data map[string]any) content.Block {
	raw, _ := json.Marshal(data)
	return content.Block{ID: uuid.NewString()[:8], Type: kind, Data: raw}
}

// EnsureAdmin creates the demo admin account if it does not exist yet.
func EnsureAdmin(ctx context.Context, users repository.UserRepository) (*models.User, error) {
	existing, err := users.GetByEmail(ctx, AdminEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &models.User{
		ID:        uuid.NewString(),
		Email:     AdminEmail,
		Password:  string(hashed),
		Name:      AdminName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Printf("seed: created admin account %s", AdminEmail)
	return admin, nil
}

// Run populates the store with the admin account plus demo users and posts,
// with a sprinkle of likes so feeds look lived-in.
func Run(ctx context.Context, users repository.UserRepository, posts repository.PostRepository, opts Options) error {
	if opts.Users <= 0 {
		opts.Users = 5
	}
	if opts.Posts <= 0 {
		opts.Posts = 20
	}

	factory := NewFactory(users, posts)

	admin, err := EnsureAdmin(ctx, users)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	authors := []*models.User{admin}
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser(ctx)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		authors = append(authors, user)
	}

	for i := 0; i < opts.Posts; i++ {
		author := authors[factory.rng.Intn(len(authors))]
		post, err := factory.CreatePost(ctx, author)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		for _, liker := range authors {
			if factory.rng.Intn(3) == 0 {
				if _, _, err := posts.ToggleLike(ctx, post.ID, liker.ID); err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
			}
		}
	}

	log.Printf("seed: created %d users and %d posts", opts.Users, opts.Posts)
	return nil
}
