package dto

// CreateSubjectRequest is the payload for creating a subject together with
// the courses it is taught in. At least one course is required.
type CreateSubjectRequest struct {
	Code      string   `json:"code" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Program   string   `json:"program" binding:"required"`
	CourseIDs []string `json:"courseIds" binding:"required,min=1"`
}
