package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

const commentIDParam = "commentID"

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	postID, err := pathID(r, postIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var comment models.CommentCreate
	if err = decodeJSON(w, r, &comment); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CommentService.CreateComment(r.Context(), owner, postID, comment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, postIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, commentIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.GetComment(r.Context(), commentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	commentID, err := pathID(r, commentIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.CommentUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CommentService.UpdateComment(r.Context(), user, commentID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	commentID, err := pathID(r, commentIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), user, commentID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Comment deleted successfully"}, http.StatusOK)
}
