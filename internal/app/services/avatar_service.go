package services

import (
	"context"

	"github.com/lucasb/schoolhub/internal/app/aggregation"
	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// AvatarService defines the interface for avatar-related operations
type AvatarService interface {
	Save(ctx context.Context, fantasyName, studentID string) (*models.Avatar, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Avatar, error)
	List(ctx context.Context) ([]*models.Avatar, error)
	ListWithStudents(ctx context.Context) ([]*models.AvatarWithStudent, error)
}

// avatarServiceImpl implements the AvatarService interface
type avatarServiceImpl struct {
	avatarRepo  AvatarStore
	studentRepo StudentStore
}

// NewAvatarService creates a new avatar service instance
func NewAvatarService(avatarRepo AvatarStore, studentRepo StudentStore) AvatarService {
	return &avatarServiceImpl{
		avatarRepo:  avatarRepo,
		studentRepo: studentRepo,
	}
}

// Save creates an avatar for a student. The student must exist and must
// not already own one; the store does not enforce either rule.
func (s *avatarServiceImpl) Save(ctx context.Context, fantasyName, studentID string) (*models.Avatar, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewReferenceNotFound("student %s does not exist", studentID)
	}

	existing, err := s.avatarRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConstraintViolation("student already has an avatar")
	}

	avatar := models.NewAvatar(fantasyName, studentID)
	if err := s.avatarRepo.Insert(ctx, avatar); err != nil {
		return nil, err
	}

	return avatar, nil
}

// GetByStudentID retrieves the avatar owned by a student, nil when none.
func (s *avatarServiceImpl) GetByStudentID(ctx context.Context, studentID string) (*models.Avatar, error) {
	return s.avatarRepo.GetByStudentID(ctx, studentID)
}

// List retrieves all avatars.
func (s *avatarServiceImpl) List(ctx context.Context) ([]*models.Avatar, error) {
	return s.avatarRepo.List(ctx)
}

// ListWithStudents retrieves all avatars and hydrates each with its
// student, fetching the students concurrently. An avatar whose student is
// gone fails the whole listing; partial results are never returned.
func (s *avatarServiceImpl) ListWithStudents(ctx context.Context) ([]*models.AvatarWithStudent, error) {
	avatars, err := s.avatarRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.AvatarWithStudent, len(avatars))
	err = aggregation.ForEach(ctx, len(avatars), func(ctx context.Context, i int) error {
		student, err := s.studentRepo.GetByID(ctx, avatars[i].StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apperrors.NewDataIntegrity("avatar %s references missing student %s", avatars[i].ID, avatars[i].StudentID)
		}

		result[i] = &models.AvatarWithStudent{
			Avatar:  avatars[i],
			Student: student,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
