package models

import "github.com/lucasb/schoolhub/internal/pkg/identifier"

// Student represents an enrolled student. CourseID always references an
// existing course; the service layer verifies that before every save.
type Student struct {
	ID                 string   `json:"id" db:"id"`
	FirstName          string   `json:"firstName" db:"first_name"`
	LastName           string   `json:"lastName" db:"last_name"`
	CourseID           string   `json:"courseId" db:"course_id"`
	Language           string   `json:"language" db:"language"`
	Email              string   `json:"email" db:"email"`
	OperationalSystems []string `json:"operationalSystems" db:"operational_systems"`
}

// NewStudent builds a student with a freshly generated identifier.
func NewStudent(firstName, lastName, courseID, language, email string, operationalSystems []string) *Student {
	return &Student{
		ID:                 identifier.New(),
		FirstName:          firstName,
		LastName:           lastName,
		CourseID:           courseID,
		Language:           language,
		Email:              email,
		OperationalSystems: operationalSystems,
	}
}

// StudentWithAvatar pairs a student with their avatar, if any.
type StudentWithAvatar struct {
	Student *Student `json:"student"`
	Avatar  *Avatar  `json:"avatar,omitempty"`
}

// StudentDetail is the fully hydrated view of a single student.
type StudentDetail struct {
	Student  *Student   `json:"student"`
	Course   *Course    `json:"course"`
	Subjects []*Subject `json:"subjects"`
}

// StudentGroup is one bucket of a grouped student listing. Students keep
// their original order within the bucket.
type StudentGroup struct {
	Name     string     `json:"name"`
	Students []*Student `json:"students"`
	Total    int        `json:"total"`
}

// GroupDimension selects the key students are grouped by.
type GroupDimension string

const (
	GroupByCourse   GroupDimension = "course"
	GroupByLanguage GroupDimension = "language"
	GroupByOS       GroupDimension = "os"
)
