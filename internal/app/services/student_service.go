package services

import (
	"context"

	"github.com/lucasb/schoolhub/internal/app/aggregation"
	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	Save(ctx context.Context, firstName, lastName, courseID, language, email string, operationalSystems []string) (*models.Student, error)
	Edit(ctx context.Context, id, firstName, lastName, courseID, language, email string, operationalSystems []string) (*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id string) error
	ListGroupedBy(ctx context.Context, dimension models.GroupDimension) ([]*models.StudentGroup, error)
	ListWithAvatars(ctx context.Context) ([]*models.StudentWithAvatar, error)
	ListWithoutAvatar(ctx context.Context) ([]*models.Student, error)
	GetDetail(ctx context.Context, id string) (*models.StudentDetail, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
	courseRepo  CourseStore
	subjectRepo SubjectStore
	avatarRepo  AvatarStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, courseRepo CourseStore, subjectRepo SubjectStore, avatarRepo AvatarStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		subjectRepo: subjectRepo,
		avatarRepo:  avatarRepo,
	}
}

// Save creates a student. The referenced course must already exist;
// nothing is persisted otherwise.
func (s *studentServiceImpl) Save(ctx context.Context, firstName, lastName, courseID, language, email string, operationalSystems []string) (*models.Student, error) {
	if err := s.checkCourseExists(ctx, courseID); err != nil {
		return nil, err
	}

	student := models.NewStudent(firstName, lastName, courseID, language, email, operationalSystems)
	if err := s.studentRepo.Upsert(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Edit re-saves an existing student, replacing every mutable field. The
// student and the referenced course must both exist.
func (s *studentServiceImpl) Edit(ctx context.Context, id, firstName, lastName, courseID, language, email string, operationalSystems []string) (*models.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewReferenceNotFound("student %s does not exist", id)
	}

	if err := s.checkCourseExists(ctx, courseID); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:                 id,
		FirstName:          firstName,
		LastName:           lastName,
		CourseID:           courseID,
		Language:           language,
		Email:              email,
		OperationalSystems: operationalSystems,
	}

	if err := s.studentRepo.Upsert(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByID retrieves a student by ID.
func (s *studentServiceImpl) GetByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student == nil {
		return nil, apperrors.NewReferenceNotFound("student %s does not exist", id)
	}

	return student, nil
}

// List retrieves all students.
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

// Delete removes a student and the avatar pointing at it, so no avatar row
// is left orphaned.
func (s *studentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.avatarRepo.DeleteByStudentID(ctx, id); err != nil {
		return err
	}

	return s.studentRepo.Delete(ctx, id)
}

// ListGroupedBy partitions all students along the requested dimension.
func (s *studentServiceImpl) ListGroupedBy(ctx context.Context, dimension models.GroupDimension) ([]*models.StudentGroup, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var keysFor aggregation.KeysFunc
	switch dimension {
	case models.GroupByCourse:
		keysFor = aggregation.ByCourse(ctx, s.courseRepo.GetByID)
	case models.GroupByLanguage:
		keysFor = aggregation.ByLanguage()
	case models.GroupByOS:
		keysFor = aggregation.ByOS()
	default:
		return nil, apperrors.NewConstraintViolation("unknown grouping dimension %q", dimension)
	}

	return aggregation.GroupStudents(students, keysFor)
}

// ListWithAvatars retrieves all students and correlates each with its
// avatar, if any. The avatar sub-fetches run concurrently; the students'
// original order is kept by re-indexing on position, not completion.
func (s *studentServiceImpl) ListWithAvatars(ctx context.Context) ([]*models.StudentWithAvatar, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.StudentWithAvatar, len(students))
	err = aggregation.ForEach(ctx, len(students), func(ctx context.Context, i int) error {
		avatar, err := s.avatarRepo.GetByStudentID(ctx, students[i].ID)
		if err != nil {
			return err
		}

		result[i] = &models.StudentWithAvatar{
			Student: students[i],
			Avatar:  avatar,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListWithoutAvatar retrieves the students that have no avatar yet.
func (s *studentServiceImpl) ListWithoutAvatar(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListWithoutAvatar(ctx)
}

// GetDetail hydrates a single student with their course and the subjects
// taught in it. The course and subject sub-fetches run concurrently.
func (s *studentServiceImpl) GetDetail(ctx context.Context, id string) (*models.StudentDetail, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.StudentDetail{Student: student}
	err = aggregation.ForEach(ctx, 2, func(ctx context.Context, i int) error {
		switch i {
		case 0:
			course, err := s.courseRepo.GetByID(ctx, student.CourseID)
			if err != nil {
				return err
			}
			if course == nil {
				return apperrors.NewDataIntegrity("student %s references missing course %s", student.ID, student.CourseID)
			}
			detail.Course = course
		case 1:
			subjects, err := s.subjectRepo.ListByCourseID(ctx, student.CourseID)
			if err != nil {
				return err
			}
			detail.Subjects = subjects
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *studentServiceImpl) checkCourseExists(ctx context.Context, courseID string) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course == nil {
		return apperrors.NewReferenceNotFound("course %s does not exist", courseID)
	}

	return nil
}
