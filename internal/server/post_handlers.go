package server

import (
	"errors"
	"strconv"

	"inkwell/internal/content"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string           `json:"title"`
		Content content.Document `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		if errors.Is(err, content.ErrInvalidShape) {
			return respondError(c, models.NewValidationError(err.Error()))
		}
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	detail, err := s.postService.GetPost(c.Context(), c.Params("id"), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// SearchPosts handles GET /api/posts with optional search, page, and limit
// query parameters. Without a search term it lists all posts newest first.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultPageSize)))

	result, err := s.postService.SearchPosts(c.Context(), service.SearchPostsInput{
		Query:  c.Query("search"),
		Page:   page,
		Limit:  limit,
		UserID: currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		Title   *string           `json:"title"`
		Content *content.Document `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		if errors.Is(err, content.ErrInvalidShape) {
			return respondError(c, models.NewValidationError(err.Error()))
		}
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  c.Params("id"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.Context(), currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	post, err := s.postService.ToggleLike(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}
