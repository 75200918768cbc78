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

func newStudentFixture() (StudentService, *memStudentStore, *memCourseStore, *memSubjectStore, *memAvatarStore) {
	studentStore := &memStudentStore{}
	courseStore := &memCourseStore{}
	subjectStore := &memSubjectStore{}
	avatarStore := &memAvatarStore{}
	svc := NewStudentService(studentStore, courseStore, subjectStore, avatarStore)
	return svc, studentStore, courseStore, subjectStore, avatarStore
}

func TestStudentService_Save(t *testing.T) {
	svc, studentStore, courseStore, _, _ := newStudentFixture()
	ctx := context.Background()

	courseStore.courses = append(courseStore.courses, &models.Course{ID: "m1", Name: "Math"})

	student, err := svc.Save(ctx, "Ana", "Souza", "m1", "portuguese", "ana@school.test", []string{"Linux", "OSX"})
	require.NoError(t, err)
	assert.Len(t, student.ID, identifier.Length)
	assert.Equal(t, "m1", student.CourseID)
	require.Len(t, studentStore.students, 1)
	assert.Equal(t, student.ID, studentStore.students[0].ID)
}

func TestStudentService_Save_UnknownCoursePersistsNothing(t *testing.T) {
	svc, studentStore, _, _, _ := newStudentFixture()

	student, err := svc.Save(context.Background(), "Ana", "Souza", "ghost", "portuguese", "ana@school.test", []string{"Linux"})
	assert.Nil(t, student)
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	assert.Empty(t, studentStore.students)
}

func TestStudentService_Edit_ReplacesAllFields(t *testing.T) {
	svc, studentStore, courseStore, _, _ := newStudentFixture()
	ctx := context.Background()

	courseStore.courses = append(courseStore.courses,
		&models.Course{ID: "m1", Name: "Math"},
		&models.Course{ID: "h1", Name: "History"},
	)
	studentStore.students = append(studentStore.students, &models.Student{
		ID: "s1", FirstName: "Ana", LastName: "Souza", CourseID: "m1",
		Language: "portuguese", Email: "ana@school.test", OperationalSystems: []string{"Linux"},
	})

	edited, err := svc.Edit(ctx, "s1", "Ana", "Lima", "h1", "english", "ana.lima@school.test", []string{"Windows"})
	require.NoError(t, err)
	assert.Equal(t, "s1", edited.ID)

	require.Len(t, studentStore.students, 1)
	assert.Equal(t, "h1", studentStore.students[0].CourseID)
	assert.Equal(t, "Lima", studentStore.students[0].LastName)
	assert.Equal(t, []string{"Windows"}, studentStore.students[0].OperationalSystems)
}

func TestStudentService_Edit_MissingStudent(t *testing.T) {
	svc, _, courseStore, _, _ := newStudentFixture()
	courseStore.courses = append(courseStore.courses, &models.Course{ID: "m1", Name: "Math"})

	_, err := svc.Edit(context.Background(), "ghost", "Ana", "Souza", "m1", "portuguese", "ana@school.test", []string{"Linux"})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestStudentService_Delete_RemovesAvatarToo(t *testing.T) {
	svc, studentStore, _, _, avatarStore := newStudentFixture()
	ctx := context.Background()

	studentStore.students = append(studentStore.students, &models.Student{ID: "s1"})
	avatarStore.avatars = append(avatarStore.avatars, &models.Avatar{ID: "a1", StudentID: "s1", FantasyName: "Neo"})

	require.NoError(t, svc.Delete(ctx, "s1"))
	assert.Empty(t, studentStore.students)
	assert.Empty(t, avatarStore.avatars)
}

func TestStudentService_ListGroupedBy_OSFanOut(t *testing.T) {
	svc, studentStore, _, _, _ := newStudentFixture()

	studentStore.students = append(studentStore.students,
		&models.Student{ID: "s1", Language: "english", OperationalSystems: []string{"Linux", "OSX"}},
		&models.Student{ID: "s2", Language: "english", OperationalSystems: []string{"Linux"}},
	)

	groups, err := svc.ListGroupedBy(context.Background(), models.GroupByOS)
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		total += g.Total
	}
	assert.Equal(t, 3, total)
}

func TestStudentService_ListGroupedBy_CourseUsesDisplayName(t *testing.T) {
	svc, studentStore, courseStore, _, _ := newStudentFixture()

	courseStore.courses = append(courseStore.courses, &models.Course{ID: "m1", Name: "Math"})
	studentStore.students = append(studentStore.students,
		&models.Student{ID: "s1", CourseID: "m1"},
		&models.Student{ID: "s2", CourseID: "m1"},
	)

	groups, err := svc.ListGroupedBy(context.Background(), models.GroupByCourse)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Math", groups[0].Name)
	assert.Equal(t, 2, groups[0].Total)
	// one lookup per distinct course, not per student
	assert.Equal(t, 1, courseStore.getCalls)
}

func TestStudentService_ListGroupedBy_MissingCourseFails(t *testing.T) {
	svc, studentStore, _, _, _ := newStudentFixture()

	studentStore.students = append(studentStore.students, &models.Student{ID: "s1", CourseID: "ghost"})

	groups, err := svc.ListGroupedBy(context.Background(), models.GroupByCourse)
	assert.Nil(t, groups)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestStudentService_ListGroupedBy_UnknownDimension(t *testing.T) {
	svc, _, _, _, _ := newStudentFixture()

	_, err := svc.ListGroupedBy(context.Background(), models.GroupDimension("shoe-size"))
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestStudentService_ListWithAvatars_PreservesOrder(t *testing.T) {
	svc, studentStore, _, _, avatarStore := newStudentFixture()

	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		studentStore.students = append(studentStore.students, &models.Student{ID: id})
	}
	avatarStore.avatars = append(avatarStore.avatars, &models.Avatar{ID: "a3", StudentID: "s3", FantasyName: "Trinity"})

	result, err := svc.ListWithAvatars(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 4)

	for i, id := range []string{"s1", "s2", "s3", "s4"} {
		assert.Equal(t, id, result[i].Student.ID)
	}
	assert.Nil(t, result[0].Avatar)
	require.NotNil(t, result[2].Avatar)
	assert.Equal(t, "Trinity", result[2].Avatar.FantasyName)
}

func TestStudentService_GetDetail(t *testing.T) {
	svc, studentStore, courseStore, subjectStore, _ := newStudentFixture()

	courseStore.courses = append(courseStore.courses, &models.Course{ID: "m1", Name: "Math"})
	studentStore.students = append(studentStore.students, &models.Student{ID: "s1", CourseID: "m1"})
	subjectStore.subjects = append(subjectStore.subjects, &models.Subject{ID: "sub1", Code: "CALC1", Name: "Calculus I"})
	subjectStore.relations = append(subjectStore.relations, &models.SubjectCourse{ID: "r1", SubjectID: "sub1", CourseID: "m1"})

	detail, err := svc.GetDetail(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", detail.Student.ID)
	assert.Equal(t, "Math", detail.Course.Name)
	require.Len(t, detail.Subjects, 1)
	assert.Equal(t, "CALC1", detail.Subjects[0].Code)
}

func TestStudentService_GetDetail_MissingCourseIsIntegrityError(t *testing.T) {
	svc, studentStore, _, _, _ := newStudentFixture()

	studentStore.students = append(studentStore.students, &models.Student{ID: "s1", CourseID: "ghost"})

	detail, err := svc.GetDetail(context.Background(), "s1")
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}
