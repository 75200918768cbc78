package services

import (
	"context"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	Save(ctx context.Context, code, name, program string, courseIDs []string) (*models.Subject, error)
	List(ctx context.Context) ([]*models.Subject, error)
	ListByCourseID(ctx context.Context, courseID string) ([]*models.Subject, error)
	ListWithCourses(ctx context.Context) ([]*models.SubjectWithCourses, error)
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo SubjectStore
	courseRepo  CourseStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectStore, courseRepo CourseStore) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		courseRepo:  courseRepo,
	}
}

// Save creates a subject linked to the given courses. At least one course
// is required, every course must exist, and the subject row plus its join
// rows commit or roll back together.
func (s *subjectServiceImpl) Save(ctx context.Context, code, name, program string, courseIDs []string) (*models.Subject, error) {
	if len(courseIDs) == 0 {
		return nil, apperrors.NewConstraintViolation("subject must be linked to at least one course")
	}

	for _, courseID := range courseIDs {
		course, err := s.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, apperrors.NewReferenceNotFound("course %s does not exist", courseID)
		}
	}

	subject := models.NewSubject(code, name, program)
	if err := s.subjectRepo.SaveWithCourses(ctx, subject, courseIDs); err != nil {
		return nil, err
	}

	return subject, nil
}

// List retrieves all subjects.
func (s *subjectServiceImpl) List(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.List(ctx)
}

// ListByCourseID retrieves the subjects linked to a course.
func (s *subjectServiceImpl) ListByCourseID(ctx context.Context, courseID string) ([]*models.Subject, error) {
	return s.subjectRepo.ListByCourseID(ctx, courseID)
}

// ListWithCourses retrieves every subject with its linked courses.
func (s *subjectServiceImpl) ListWithCourses(ctx context.Context) ([]*models.SubjectWithCourses, error) {
	return s.subjectRepo.ListWithCourses(ctx)
}
