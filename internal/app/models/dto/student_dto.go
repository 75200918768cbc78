package dto

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	CourseID           string   `json:"courseId" binding:"required"`
	Language           string   `json:"language" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	OperationalSystems []string `json:"operationalSystems" binding:"required,min=1"`
}

// UpdateStudentRequest is the payload for re-saving an existing student.
// All mutable fields are replaced.
type UpdateStudentRequest struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	CourseID           string   `json:"courseId" binding:"required"`
	Language           string   `json:"language" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	OperationalSystems []string `json:"operationalSystems" binding:"required,min=1"`
}
