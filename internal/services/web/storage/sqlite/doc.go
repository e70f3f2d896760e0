// Package sqlite provides the web cache persistence adapter backed by SQLite.
//
// The store only holds derived cache state that can be rebuilt from the posts
// API, so deleting the database file is always safe.
package sqlite
