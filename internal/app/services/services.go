package services

import (
	"context"

	"github.com/lucasb/schoolhub/internal/app/models"
)

// Services defined in this package:
// - StudentService: student lifecycle, grouped listings and hydrated views
// - CourseService: course lifecycle, guarded by enrollment checks
// - SubjectService: subject creation with course links, join listings
// - AvatarService: avatar lifecycle and avatar/student correlation
//
// Cross-service reads go through the store interfaces below and only in
// one direction per operation: student save consults courses, course
// delete consults students, avatar save consults students, subject save
// consults courses. No operation calls back into its caller's entity.

// StudentStore is the slice of the student repository the services depend on.
type StudentStore interface {
	Upsert(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	ListByCourseID(ctx context.Context, courseID string) ([]*models.Student, error)
	ListWithoutAvatar(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id string) error
}

// CourseStore is the slice of the course repository the services depend on.
type CourseStore interface {
	Upsert(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Delete(ctx context.Context, id string) error
}

// SubjectStore is the slice of the subject repository the services depend on.
type SubjectStore interface {
	SaveWithCourses(ctx context.Context, subject *models.Subject, courseIDs []string) error
	List(ctx context.Context) ([]*models.Subject, error)
	ListByCourseID(ctx context.Context, courseID string) ([]*models.Subject, error)
	ListWithCourses(ctx context.Context) ([]*models.SubjectWithCourses, error)
}

// AvatarStore is the slice of the avatar repository the services depend on.
type AvatarStore interface {
	Insert(ctx context.Context, avatar *models.Avatar) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Avatar, error)
	List(ctx context.Context) ([]*models.Avatar, error)
	DeleteByStudentID(ctx context.Context, studentID string) error
}
