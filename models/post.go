package models

// Post is a blog entry written by a user.
type Post struct {
	// PostID is the surrogate primary key of the post.
	PostID int64 `json:"id" db:"id"`

	// Title is the headline of the post.
	Title string `json:"title" db:"title"`

	// Content is the body text of the post.
	Content string `json:"content" db:"content"`

	// OwnerID references the user that created the post. It is always
	// derived from the authenticated caller and never read from a request body.
	OwnerID int64 `json:"owner_id" db:"owner_id"`
}

// PostWithOwner is a post with its owner eagerly attached.
type PostWithOwner struct {
	Post
	Owner UserPublic `json:"owner"`
}

// PostWithComments is a post with its owner and all of its comments attached.
// Comments is never nil so that it serializes as an empty JSON array.
type PostWithComments struct {
	PostWithOwner
	Comments []Comment `json:"comments"`
}

// PostCreate is the request body of POST /posts/.
type PostCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostUpdate is the request body of PUT /posts/{id}.
// Only non-nil fields are applied (partial update).
type PostUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update carries no fields to apply.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
