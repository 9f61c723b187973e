package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingField    = errors.New("all fields are required")
	ErrArticleNotFound = errors.New("article not found")
)

// Article is a health article managed by admins and shown to everyone.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}
