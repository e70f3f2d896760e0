// Package modules defines web module registry helpers.
package modules

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	module "github.com/louisbranch/postboard/internal/services/web/module"
	"github.com/louisbranch/postboard/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// PostStore is the cached upstream every module reads from. Each module
// narrows it to the methods it needs through its own PostSource.
type PostStore interface {
	ListPosts(context.Context) ([]posts.Post, error)
	GetPost(context.Context, int) (posts.Post, error)
	CreatePost(context.Context, posts.CreateInput) (posts.Post, error)
	UpdatePost(context.Context, posts.UpdateInput) (posts.Post, error)
	DeletePost(context.Context, int) error
}

// Dependencies carries the shared post store and request resolvers needed to
// compose the module registry. A nil Posts leaves every module degraded.
type Dependencies struct {
	Posts           PostStore
	ResolveLanguage module.ResolveLanguage
	SchemePolicy    requestmeta.SchemePolicy
}
