// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root                   = "/"
	Health                 = "/up"
	Search                 = "/search"
	StaticPrefix           = "/static/"
	PostsPrefix            = "/posts/"
	PostPattern            = PostsPrefix + "{postID}"
	Admin                  = "/admin"
	AdminPrefix            = "/admin/"
	AdminPostsPrefix       = "/admin/posts/"
	AdminPostNew           = AdminPostsPrefix + "new"
	AdminPostEditPattern   = AdminPostsPrefix + "{postID}/edit"
	AdminPostDeletePattern = AdminPostsPrefix + "{postID}/delete"
)

// Query parameter names shared by listing routes.
const (
	QueryPage    = "page"
	QueryPerPage = "per_page"
	QuerySearch  = "q"
)

// Post returns the public post-detail route.
func Post(id int) string {
	return PostsPrefix + strconv.Itoa(id)
}

// AdminPostEdit returns the admin edit-form route.
func AdminPostEdit(id int) string {
	return AdminPostsPrefix + strconv.Itoa(id) + "/edit"
}

// AdminPostDelete returns the admin delete-action route.
func AdminPostDelete(id int) string {
	return AdminPostsPrefix + strconv.Itoa(id) + "/delete"
}

// Home returns the public listing route for page. Page 1 is the bare root.
func Home(page int) string {
	if page <= 1 {
		return Root
	}
	return withQuery(Root, url.Values{QueryPage: {strconv.Itoa(page)}})
}

// AdminList returns the admin listing route. Zero values are omitted so the
// defaults apply.
func AdminList(page int, perPage int, query string) string {
	values := url.Values{}
	if page > 1 {
		values.Set(QueryPage, strconv.Itoa(page))
	}
	if perPage > 0 {
		values.Set(QueryPerPage, strconv.Itoa(perPage))
	}
	if query = strings.TrimSpace(query); query != "" {
		values.Set(QuerySearch, query)
	}
	return withQuery(Admin, values)
}

// SearchQuery returns the search route for query.
func SearchQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return Search
	}
	return withQuery(Search, url.Values{QuerySearch: {query}})
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
