package models

import "github.com/lucasb/schoolhub/internal/pkg/identifier"

// Course represents a course students enroll in.
type Course struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// NewCourse builds a course with a freshly generated identifier.
func NewCourse(name string) *Course {
	return &Course{
		ID:   identifier.New(),
		Name: name,
	}
}

// NewCourseWithID builds a course keeping an existing identifier, used when
// editing re-saves the full record.
func NewCourseWithID(id, name string) *Course {
	return &Course{
		ID:   id,
		Name: name,
	}
}
