package dto

// CreateAvatarRequest is the payload for creating an avatar for a student.
type CreateAvatarRequest struct {
	FantasyName string `json:"fantasyName" binding:"required"`
	StudentID   string `json:"studentId" binding:"required"`
}
