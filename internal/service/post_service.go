package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/content"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize and MaxPageSize bound the search page size.
	DefaultPageSize = 10
	MaxPageSize     = 50

	excerptLength   = 150
	readingTempoWPM = 200
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  string
	Title   string
	Content content.Document
}

// UpdatePostInput patches a post. Nil fields were absent from the request
// and leave the stored value untouched.
type UpdatePostInput struct {
	UserID  string
	PostID  string
	Title   *string
	Content *content.Document
}

type SearchPostsInput struct {
	Query  string
	Page   int
	Limit  int
	UserID string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.PostView, error) {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if content.IsEmpty(in.Content) {
		return nil, models.NewValidationError("Content is required")
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		Likes:     0,
		LikedBy:   []string{},
		CreatedBy: in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.viewOf(ctx, post, in.UserID)
}

// GetPost returns the full detail payload for one post, cached per viewer.
func (s *PostService) GetPost(ctx context.Context, postID, userID string) (*models.PostDetail, error) {
	key := cache.PostKey(postID, userID)
	return cache.Aside(ctx, key, cache.DefaultTTL, func() (*models.PostDetail, error) {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		view, err := s.viewOf(ctx, post, userID)
		if err != nil {
			return nil, err
		}
		return &models.PostDetail{
			PostView:    *view,
			Excerpt:     content.Truncate(post.Content, excerptLength, "..."),
			WordCount:   content.WordCount(post.Content),
			ReadingTime: content.ReadingTime(post.Content, readingTempoWPM),
		}, nil
	})
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.CreatedBy != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != nil {
		if err := validation.ValidateTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		if content.IsEmpty(*in.Content) {
			return nil, models.NewValidationError("Content is required")
		}
		post.Content = *in.Content
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, post.ID)

	return s.viewOf(ctx, post, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.CreatedBy != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// ToggleLike flips the caller's like on a post and returns the updated view.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (*models.PostView, error) {
	post, _, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)
	return s.viewOf(ctx, post, userID)
}

// SearchPosts runs the shared list/search pipeline: filter, sort newest
// first, then paginate. An empty query lists everything.
func (s *PostService) SearchPosts(ctx context.Context, in SearchPostsInput) (*models.PostPage, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	creators, err := s.userRepo.UsersByID(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(in.Query))
	observability.SearchesTotal.WithLabelValues(strconv.FormatBool(query != "")).Inc()

	matched := posts[:0:0]
	for _, p := range posts {
		if query == "" || s.matches(p, creators, query) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	views := make([]models.PostView, 0, end-start)
	for _, p := range matched[start:end] {
		views = append(views, viewWith(p, creators, in.UserID))
	}

	return &models.PostPage{
		Posts:       views,
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}

// matches checks the query against the post title, its extracted content
// text, and the creator's name and email.
func (s *PostService) matches(p models.Post, creators map[string]models.User, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(content.ExtractText(p.Content)), query) {
		return true
	}
	if creator, ok := creators[p.CreatedBy]; ok {
		if strings.Contains(strings.ToLower(creator.Name), query) {
			return true
		}
		if strings.Contains(strings.ToLower(creator.Email), query) {
			return true
		}
	}
	return false
}

func (s *PostService) viewOf(ctx context.Context, post *models.Post, userID string) (*models.PostView, error) {
	creators, err := s.userRepo.UsersByID(ctx)
	if err != nil {
		return nil, err
	}
	view := viewWith(*post, creators, userID)
	return &view, nil
}

// viewWith joins a post with its creator. Posts whose creator account was
// removed keep a null creator rather than disappearing.
func viewWith(p models.Post, creators map[string]models.User, userID string) models.PostView {
	view := models.PostView{Post: p}
	if creator, ok := creators[p.CreatedBy]; ok {
		view.Creator = creator.Summary()
	}
	if userID != "" {
		view.IsLiked = p.LikedByUser(userID)
	}
	return view
}
