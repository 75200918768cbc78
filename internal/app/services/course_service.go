package services

import (
	"context"
	"strings"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	Save(ctx context.Context, name string) (*models.Course, error)
	Edit(ctx context.Context, id, name string) (*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Delete(ctx context.Context, id string) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo  CourseStore
	studentRepo StudentStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, studentRepo StudentStore) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
	}
}

// Save creates a course with a generated identity.
func (s *courseServiceImpl) Save(ctx context.Context, name string) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewConstraintViolation("course name cannot be empty")
	}

	course := models.NewCourse(name)
	if err := s.courseRepo.Upsert(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Edit re-saves a course keeping its identity, replacing the name.
func (s *courseServiceImpl) Edit(ctx context.Context, id, name string) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewConstraintViolation("course name cannot be empty")
	}

	course := models.NewCourseWithID(id, name)
	if err := s.courseRepo.Upsert(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetByID retrieves a course by ID.
func (s *courseServiceImpl) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if course == nil {
		return nil, apperrors.NewReferenceNotFound("course %s does not exist", id)
	}

	return course, nil
}

// List retrieves all courses.
func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.List(ctx)
}

// Delete removes a course unless students still reference it.
func (s *courseServiceImpl) Delete(ctx context.Context, id string) error {
	enrolled, err := s.studentRepo.ListByCourseID(ctx, id)
	if err != nil {
		return err
	}

	if len(enrolled) > 0 {
		return apperrors.NewConstraintViolation("course has enrolled students")
	}

	return s.courseRepo.Delete(ctx, id)
}
