package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

func newSubjectFixture() (SubjectService, *memSubjectStore, *memCourseStore) {
	subjectStore := &memSubjectStore{}
	courseStore := &memCourseStore{}
	return NewSubjectService(subjectStore, courseStore), subjectStore, courseStore
}

func TestSubjectService_Save_OneJoinRowPerCourse(t *testing.T) {
	svc, subjectStore, courseStore := newSubjectFixture()

	courseStore.courses = append(courseStore.courses,
		&models.Course{ID: "c1", Name: "Math"},
		&models.Course{ID: "c2", Name: "History"},
	)

	subject, err := svc.Save(context.Background(), "CALC1", "Calculus I", "STEM", []string{"c1", "c2"})
	require.NoError(t, err)

	require.Len(t, subjectStore.relations, 2)
	for _, rel := range subjectStore.relations {
		assert.Equal(t, subject.ID, rel.SubjectID)
		assert.NotEmpty(t, rel.ID)
	}
	assert.Equal(t, "c1", subjectStore.relations[0].CourseID)
	assert.Equal(t, "c2", subjectStore.relations[1].CourseID)
}

func TestSubjectService_Save_NoCourses(t *testing.T) {
	svc, subjectStore, _ := newSubjectFixture()

	subject, err := svc.Save(context.Background(), "CALC1", "Calculus I", "STEM", nil)
	assert.Nil(t, subject)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.Empty(t, subjectStore.subjects)
}

func TestSubjectService_Save_UnknownCourse(t *testing.T) {
	svc, subjectStore, courseStore := newSubjectFixture()

	courseStore.courses = append(courseStore.courses, &models.Course{ID: "c1", Name: "Math"})

	subject, err := svc.Save(context.Background(), "CALC1", "Calculus I", "STEM", []string{"c1", "ghost"})
	assert.Nil(t, subject)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	assert.Empty(t, subjectStore.subjects)
	assert.Empty(t, subjectStore.relations)
}

func TestSubjectService_Save_StoreFailureLeavesNothing(t *testing.T) {
	svc, subjectStore, courseStore := newSubjectFixture()

	courseStore.courses = append(courseStore.courses, &models.Course{ID: "c1", Name: "Math"})
	subjectStore.failWith = apperrors.NewStorageFailure("save subject with courses", errors.New("join insert failed"))

	subject, err := svc.Save(context.Background(), "CALC1", "Calculus I", "STEM", []string{"c1"})
	assert.Nil(t, subject)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	assert.Empty(t, subjectStore.subjects)
	assert.Empty(t, subjectStore.relations)
}

func TestSubjectService_ListByCourseID(t *testing.T) {
	svc, subjectStore, _ := newSubjectFixture()

	subjectStore.subjects = append(subjectStore.subjects,
		&models.Subject{ID: "sub1", Code: "CALC1"},
		&models.Subject{ID: "sub2", Code: "HIST1"},
	)
	subjectStore.relations = append(subjectStore.relations,
		&models.SubjectCourse{ID: "r1", SubjectID: "sub1", CourseID: "c1"},
		&models.SubjectCourse{ID: "r2", SubjectID: "sub2", CourseID: "c2"},
	)

	subjects, err := svc.ListByCourseID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "CALC1", subjects[0].Code)
}
