package dto

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCourseRequest is the payload for renaming a course.
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required"`
}
