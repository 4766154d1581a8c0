package models

import "time"

// User represents an account entity used for authentication and course
// ownership. Password holds the bcrypt hash once the user has been created
// and must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// Password is the plaintext candidate on input and the bcrypt hash after
	// creation. It is accepted from JSON but never rendered into responses
	// because handlers only serialize UserPublic and CurrentUser.
	Password string `json:"password"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the fields of u that are safe to expose to any client.
func (u User) Public() UserPublic {
	return UserPublic{
		UserID:       u.UserID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// UserPublic is the owner representation embedded into course responses.
type UserPublic struct {
	UserID       int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CurrentUser is the body of GET /api/users.
type CurrentUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// NewCurrentUser builds the current-user view of an authenticated user.
func NewCurrentUser(u User) CurrentUser {
	return CurrentUser{
		Name:     u.FirstName,
		Username: u.EmailAddress,
	}
}
