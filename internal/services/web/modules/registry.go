package modules

import (
	"github.com/louisbranch/postboard/internal/services/web/modules/admin"
	"github.com/louisbranch/postboard/internal/services/web/modules/postdetail"
	"github.com/louisbranch/postboard/internal/services/web/modules/public"
	"github.com/louisbranch/postboard/internal/services/web/modules/search"
	"github.com/louisbranch/postboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/postboard/internal/services/web/platform/publichandler"
)

// DefaultPublicModules returns the reader-facing modules. The root module
// goes first; it owns the catch-all not-found page.
func DefaultPublicModules(deps Dependencies) []Module {
	base := publichandler.NewBase(publichandler.WithResolveLanguage(deps.ResolveLanguage))
	return []Module{
		public.NewWithGateway(public.NewPostGateway(deps.Posts), base),
		postdetail.NewWithGateway(postdetail.NewPostGateway(deps.Posts), base),
		search.NewWithGateway(search.NewPostGateway(deps.Posts), base),
	}
}

// DefaultAdminModules returns the post management modules.
func DefaultAdminModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.ResolveLanguage, deps.SchemePolicy)
	return []Module{admin.NewWithGateway(admin.NewPostGateway(deps.Posts), base)}
}

// DefaultModules returns every module the web server mounts.
func DefaultModules(deps Dependencies) []Module {
	return append(DefaultPublicModules(deps), DefaultAdminModules(deps)...)
}
