// Package posterrors maps post gateway failures onto typed web errors with
// the localization keys shown to readers.
package posterrors

import (
	"context"
	"errors"
	"log"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

var failureKeys = map[jsonplaceholder.Op]string{
	jsonplaceholder.OpListPosts:  "error.fetch_posts",
	jsonplaceholder.OpGetPost:    "error.fetch_post",
	jsonplaceholder.OpCreatePost: "error.create_post",
	jsonplaceholder.OpUpdatePost: "error.update_post",
	jsonplaceholder.OpDeletePost: "error.delete_post",
}

// Map converts err from op into an apperrors.Error. Domain sentinels keep
// their meaning; everything else is an unavailable upstream.
func Map(op jsonplaceholder.Op, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, posts.ErrInvalidID):
		return apperrors.Wrap(apperrors.KindNotFound, "error.invalid_post_id", "invalid post id", err)
	case errors.Is(err, posts.ErrNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, "error.post_not_found", "post not found", err)
	case errors.Is(err, posts.ErrTitleRequired):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.title_required", "title is required", err)
	case errors.Is(err, posts.ErrBodyRequired):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.body_required", "body is required", err)
	case errors.Is(err, posts.ErrInvalidData):
		log.Printf("web posts op=%q err=%v", op, err)
		return apperrors.Wrap(apperrors.KindUnavailable, "error.invalid_post_data", "invalid post data", err)
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.Wrap(apperrors.KindUnavailable, failureKey(op), "request canceled", err)
	}
	log.Printf("web posts op=%q err=%v", op, err)
	return apperrors.Wrap(apperrors.KindUnavailable, failureKey(op), string(op)+" failed", err)
}

func failureKey(op jsonplaceholder.Op) string {
	if key, ok := failureKeys[op]; ok {
		return key
	}
	return "error.fetch_posts"
}
