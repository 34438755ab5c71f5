package models

// User represents an account entity used for authentication and ownership
// of posts and comments.
type User struct {
	// UserID is the surrogate primary key of the user.
	UserID int64 `json:"id" db:"id"`

	// Email is the unique login identifier of the user.
	// It is stored trimmed and lower-cased.
	Email string `json:"email" db:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-" db:"password_hash"`
}

// Public returns the client-facing projection of the user.
func (u User) Public() UserPublic {
	return UserPublic{ID: u.UserID, Email: u.Email}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPublic is the JSON projection of a user returned by the API.
type UserPublic struct {
	ID    int64  `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
}

// Credentials carries an email/password pair submitted on registration or login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
