package models

// CourseInput is the request body of course creation and update.
// Only non-nil fields are applied on update (partial update support).
// Ownership is taken from the authenticated identity, never from the body.
type CourseInput struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (c CourseInput) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.EstimatedTime == nil && c.MaterialsNeeded == nil
}

// ToCourse converts the input into a new course owned by ownerID.
func (c CourseInput) ToCourse(ownerID int64) Course {
	course := Course{
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          ownerID,
	}
	if c.Title != nil {
		course.Title = *c.Title
	}
	if c.Description != nil {
		course.Description = *c.Description
	}
	return course
}
