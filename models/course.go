package models

import "time"

// Course is a unit of teaching material owned by exactly one user.
// UserID is set at creation time and never reassigned.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// EstimatedTime and MaterialsNeeded are optional free-form strings.
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"userId"`

	// Owner carries the public fields of the owning user on read paths.
	Owner *UserPublic `json:"user,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
