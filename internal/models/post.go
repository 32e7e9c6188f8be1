package models

import (
	"time"

	"inkwell/internal/content"
)

// Post is a published article. LikedBy is the set of user IDs that have
// liked the post; Likes always equals its length.
type Post struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   content.Document `json:"content"`
	Likes     int              `json:"likes"`
	LikedBy   []string         `json:"likedBy"`
	CreatedBy string           `json:"createdBy"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// LikedByUser reports whether the given user has liked the post.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// PostView is a post joined with its creator and the requesting user's
// like state.
type PostView struct {
	Post
	Creator *CreatorSummary `json:"creator"`
	IsLiked bool            `json:"isLiked"`
}

// PostDetail extends PostView with derived reading metadata for the
// single-post payload.
type PostDetail struct {
	PostView
	Excerpt     string `json:"excerpt"`
	WordCount   int    `json:"wordCount"`
	ReadingTime int    `json:"readingTime"`
}

// PostPage is one page of search results.
type PostPage struct {
	Posts       []PostView `json:"posts"`
	Total       int        `json:"total"`
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
	TotalPages  int        `json:"totalPages"`
	HasNextPage bool       `json:"hasNextPage"`
	HasPrevPage bool       `json:"hasPrevPage"`
}
