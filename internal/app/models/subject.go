package models

import "github.com/lucasb/schoolhub/internal/pkg/identifier"

// Subject represents a subject taught in one or more courses.
type Subject struct {
	ID      string `json:"id" db:"id"`
	Code    string `json:"code" db:"code"`
	Name    string `json:"name" db:"name"`
	Program string `json:"program" db:"program"`
}

// NewSubject builds a subject with a freshly generated identifier.
func NewSubject(code, name, program string) *Subject {
	return &Subject{
		ID:      identifier.New(),
		Code:    code,
		Name:    name,
		Program: program,
	}
}

// SubjectCourse is the join row linking a subject to a course. It carries
// its own generated identifier.
type SubjectCourse struct {
	ID        string `json:"id" db:"id"`
	SubjectID string `json:"subjectId" db:"subject_id"`
	CourseID  string `json:"courseId" db:"course_id"`
}

// SubjectWithCourses pairs a subject with every course it is linked to.
type SubjectWithCourses struct {
	Subject *Subject  `json:"subject"`
	Courses []*Course `json:"courses"`
}
