// Package jsonplaceholder is the HTTP client for the JSONPlaceholder posts API.
//
// The API is the only source of truth for posts. It accepts writes but does
// not persist them, and it has no server-side paging or search, so callers
// fetch the full collection and slice it locally.
package jsonplaceholder
