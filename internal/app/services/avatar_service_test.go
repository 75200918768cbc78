package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
	"github.com/lucasb/schoolhub/internal/pkg/identifier"
)

func newAvatarFixture() (AvatarService, *memAvatarStore, *memStudentStore) {
	avatarStore := &memAvatarStore{}
	studentStore := &memStudentStore{}
	return NewAvatarService(avatarStore, studentStore), avatarStore, studentStore
}

func TestAvatarService_Save(t *testing.T) {
	svc, avatarStore, studentStore := newAvatarFixture()
	studentStore.students = append(studentStore.students, &models.Student{ID: "s1"})

	avatar, err := svc.Save(context.Background(), "Neo", "s1")
	require.NoError(t, err)
	assert.Len(t, avatar.ID, identifier.Length)
	assert.Equal(t, "Neo", avatar.FantasyName)
	assert.Len(t, avatarStore.avatars, 1)
}

func TestAvatarService_Save_MissingStudent(t *testing.T) {
	svc, avatarStore, _ := newAvatarFixture()

	avatar, err := svc.Save(context.Background(), "Neo", "ghost")
	assert.Nil(t, avatar)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	assert.Empty(t, avatarStore.avatars)
}

func TestAvatarService_Save_SecondAvatarRejected(t *testing.T) {
	svc, avatarStore, studentStore := newAvatarFixture()
	ctx := context.Background()
	studentStore.students = append(studentStore.students, &models.Student{ID: "s1"})

	first, err := svc.Save(ctx, "Neo", "s1")
	require.NoError(t, err)

	second, err := svc.Save(ctx, "Morpheus", "s1")
	assert.Nil(t, second)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

	// the original avatar is unchanged
	require.Len(t, avatarStore.avatars, 1)
	assert.Equal(t, first.ID, avatarStore.avatars[0].ID)
	assert.Equal(t, "Neo", avatarStore.avatars[0].FantasyName)
}

func TestAvatarService_ListWithStudents_PreservesAvatarOrder(t *testing.T) {
	svc, avatarStore, studentStore := newAvatarFixture()

	for _, id := range []string{"s1", "s2", "s3"} {
		studentStore.students = append(studentStore.students, &models.Student{ID: id, FirstName: "Student-" + id})
		avatarStore.avatars = append(avatarStore.avatars, &models.Avatar{ID: "a-" + id, StudentID: id})
	}

	result, err := svc.ListWithStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	for i, id := range []string{"s1", "s2", "s3"} {
		assert.Equal(t, "a-"+id, result[i].Avatar.ID)
		assert.Equal(t, id, result[i].Student.ID)
	}
}

func TestAvatarService_ListWithStudents_DanglingStudentFails(t *testing.T) {
	svc, avatarStore, studentStore := newAvatarFixture()

	studentStore.students = append(studentStore.students, &models.Student{ID: "s1"})
	avatarStore.avatars = append(avatarStore.avatars,
		&models.Avatar{ID: "a1", StudentID: "s1"},
		&models.Avatar{ID: "a2", StudentID: "gone"},
	)

	result, err := svc.ListWithStudents(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}
