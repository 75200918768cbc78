package repositories

import (
	"github.com/lucasb/schoolhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
	SubjectRepository *SubjectRepository
	AvatarRepository  *AvatarRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(database.Pool),
		CourseRepository:  NewCourseRepository(database.Pool),
		SubjectRepository: NewSubjectRepository(database),
		AvatarRepository:  NewAvatarRepository(database.Pool),
	}
}
