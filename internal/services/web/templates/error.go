package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "core.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "core.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "core.error.title_not_found"
	appErrorHeadingServerErrKey   = "core.error.title_server_error"
	appErrorMessageNotFoundKey    = "core.error.message_not_found"
	appErrorMessageServerErrKey   = "core.error.message_server_error"
	appErrorActionHomeKey         = "core.error.action_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the error body for 404 and 5xx pages.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	heading := T(loc, appErrorHeadingServerErrKey)
	message := T(loc, appErrorMessageServerErrKey)
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		heading = T(loc, appErrorHeadingNotFoundKey)
		message = T(loc, appErrorMessageNotFoundKey)
	}
	return StatusState(StateView{
		Tone:        ToneError,
		Title:       heading,
		Message:     message,
		ActionLabel: T(loc, appErrorActionHomeKey),
		ActionURL:   routepath.Root,
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
