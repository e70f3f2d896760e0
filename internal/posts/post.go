// Package posts defines the post record shared by the dashboard surfaces and
// the write-input rules applied before anything is sent upstream.
package posts

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultUserID is the author attached to posts created from the dashboard.
const DefaultUserID = 1

var (
	// ErrInvalidID reports a post id that is not a positive integer.
	ErrInvalidID = errors.New("invalid post ID")
	// ErrNotFound reports a post the upstream API does not know.
	ErrNotFound = errors.New("post not found")
	// ErrInvalidData reports an upstream payload that is not a post.
	ErrInvalidData = errors.New("invalid post data received")
	// ErrTitleRequired reports a blank title on write.
	ErrTitleRequired = errors.New("title is required")
	// ErrBodyRequired reports a blank body on write.
	ErrBodyRequired = errors.New("content is required")
)

// Post is one JSONPlaceholder post.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// CreateInput carries the fields accepted when creating a post.
type CreateInput struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// UpdateInput carries the fields accepted when replacing a post.
type UpdateInput struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// ParseID parses a route id. Anything but a positive integer is ErrInvalidID.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ValidID reports whether id can address a post.
func ValidID(id int) bool {
	return id > 0
}

// NormalizeCreate trims the input and applies the default author.
func NormalizeCreate(in CreateInput) (CreateInput, error) {
	title, body, err := normalizeContent(in.Title, in.Body)
	if err != nil {
		return CreateInput{}, err
	}
	userID := in.UserID
	if userID <= 0 {
		userID = DefaultUserID
	}
	return CreateInput{Title: title, Body: body, UserID: userID}, nil
}

// NormalizeUpdate trims the input and keeps a usable author id.
func NormalizeUpdate(in UpdateInput) (UpdateInput, error) {
	if !ValidID(in.ID) {
		return UpdateInput{}, ErrInvalidID
	}
	title, body, err := normalizeContent(in.Title, in.Body)
	if err != nil {
		return UpdateInput{}, err
	}
	userID := in.UserID
	if userID <= 0 {
		userID = DefaultUserID
	}
	return UpdateInput{ID: in.ID, Title: title, Body: body, UserID: userID}, nil
}

func normalizeContent(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", ErrTitleRequired
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", "", ErrBodyRequired
	}
	return title, body, nil
}
