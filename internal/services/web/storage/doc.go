// Package storage declares persistence interfaces for web-owned cache data.
//
// The web cache is a derived read optimization over the posts API and never
// becomes the source of truth for posts.
package storage
