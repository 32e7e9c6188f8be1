// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. The password field holds a bcrypt
// hash; it round-trips through the snapshot but is never exposed over the
// API, which only ever serializes CreatorSummary.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatorSummary is the public projection of a post's author.
type CreatorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() *CreatorSummary {
	return &CreatorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
