package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// errorReply describes how one error is reported to the client.
// An empty detail means the message of the matched error is sent.
type errorReply struct {
	target error
	status int
	detail string
	// challenge adds "WWW-Authenticate: Bearer" to the response.
	challenge bool
}

// errorStatusMap is matched top to bottom, so specific errors precede the
// generic ones they wrap.
var errorStatusMap = []errorReply{
	{target: service.ErrValidation, status: http.StatusBadRequest},
	{target: ErrInvalidBody, status: http.StatusBadRequest, detail: "Invalid request body"},
	{target: ErrInvalidID, status: http.StatusBadRequest, detail: "Invalid id"},

	{target: service.ErrDuplicateEmail, status: http.StatusBadRequest, detail: "Email already registered"},
	{target: service.ErrInvalidCredentials, status: http.StatusBadRequest, detail: "Incorrect username or password", challenge: true},

	{target: service.ErrTokenExpired, status: http.StatusUnauthorized, detail: "Token has expired", challenge: true},
	{target: service.ErrTokenInvalid, status: http.StatusUnauthorized, detail: "Could not validate credentials", challenge: true},
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, detail: "Could not validate credentials", challenge: true},
	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, detail: "Not authenticated", challenge: true},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, detail: "Could not validate credentials", challenge: true},
	{target: ErrNoCallerInContext, status: http.StatusUnauthorized, detail: "Not authenticated", challenge: true},

	{target: service.ErrForbiddenPostUpdate, status: http.StatusForbidden, detail: "Not authorized to update this post"},
	{target: service.ErrForbiddenPostDelete, status: http.StatusForbidden, detail: "Not authorized to delete this post"},
	{target: service.ErrForbiddenCommentUpdate, status: http.StatusForbidden, detail: "Not authorized to update this comment"},
	{target: service.ErrForbiddenCommentDelete, status: http.StatusForbidden, detail: "Not authorized to delete this comment"},
	{target: service.ErrForbidden, status: http.StatusForbidden, detail: "Not authorized"},

	{target: service.ErrPostNotFound, status: http.StatusNotFound, detail: "Post not found"},
	{target: service.ErrCommentNotFound, status: http.StatusNotFound, detail: "Comment not found"},

	{target: service.ErrUserHasDependents, status: http.StatusConflict, detail: "User still owns posts or comments"},
}

var internalErrorReply = errorReply{
	status: http.StatusInternalServerError,
	detail: http.StatusText(http.StatusInternalServerError),
}

func replyFromError(err error) errorReply {
	for _, reply := range errorStatusMap {
		if errors.Is(err, reply.target) {
			if reply.detail == "" {
				reply.detail = err.Error()
			}
			return reply
		}
	}
	return internalErrorReply
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// writeError sends err as {"detail": ...}. Unknown errors become a 500 whose
// cause is only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	reply := replyFromError(err)

	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", reply.status).Msg("request rejected")
	}

	if reply.challenge {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteJSON(w, models.ErrorResponse{Detail: reply.detail}, reply.status)
}
