// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a reply left by a user under a post.
type Comment struct {
	CommentID int64  `json:"id" db:"id"`
	Body      string `json:"body" db:"body"`
	OwnerID   int64  `json:"owner_id" db:"owner_id"`
	PostID    int64  `json:"post_id" db:"post_id"`
}

// CommentWithOwner is a comment with its author eagerly attached.
type CommentWithOwner struct {
	Comment
	Owner UserPublic `json:"owner"`
}

// CommentCreate is the request body of POST /posts/{id}/comments/.
type CommentCreate struct {
	Body string `json:"body"`
}

// CommentUpdate is the request body of PUT /comments/{id}.
// A nil Body leaves the comment unchanged.
type CommentUpdate struct {
	Body *string `json:"body,omitempty"`
}

// IsEmpty reports whether the update carries no fields to apply.
func (u CommentUpdate) IsEmpty() bool {
	return u.Body == nil
}
