package models

import "github.com/lucasb/schoolhub/internal/pkg/identifier"

// Avatar is a student's in-game persona. A student has at most one; the
// service checks that before insert since the store does not enforce it.
type Avatar struct {
	ID          string `json:"id" db:"id"`
	StudentID   string `json:"studentId" db:"student_id"`
	FantasyName string `json:"fantasyName" db:"fantasy_name"`
}

// NewAvatar builds an avatar with a freshly generated identifier.
func NewAvatar(fantasyName, studentID string) *Avatar {
	return &Avatar{
		ID:          identifier.New(),
		StudentID:   studentID,
		FantasyName: fantasyName,
	}
}

// AvatarWithStudent pairs an avatar with the student that owns it.
type AvatarWithStudent struct {
	Avatar  *Avatar  `json:"avatar"`
	Student *Student `json:"student"`
}
