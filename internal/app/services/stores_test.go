package services

import (
	"context"
	"sync"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/identifier"
)

// In-memory store fakes. They preserve insertion order like the real
// repositories and let tests inject failures per operation.

type memStudentStore struct {
	mu        sync.Mutex
	students  []*models.Student
	failWith  error
	getCalls  int
	listCalls int
}

func (m *memStudentStore) Upsert(ctx context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, s := range m.students {
		if s.ID == student.ID {
			m.students[i] = student
			return nil
		}
	}
	m.students = append(m.students, student)
	return nil
}

func (m *memStudentStore) GetByID(ctx context.Context, id string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStudentStore) List(ctx context.Context) ([]*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]*models.Student(nil), m.students...), nil
}

func (m *memStudentStore) ListByCourseID(ctx context.Context, courseID string) ([]*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []*models.Student
	for _, s := range m.students {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStudentStore) ListWithoutAvatar(ctx context.Context) ([]*models.Student, error) {
	// the real query joins against avatar; the fake is wired per test
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Student(nil), m.students...), nil
}

func (m *memStudentStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, s := range m.students {
		if s.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCourseStore struct {
	mu       sync.Mutex
	courses  []*models.Course
	failWith error
	getCalls int
}

func (m *memCourseStore) Upsert(ctx context.Context, course *models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, c := range m.courses {
		if c.ID == course.ID {
			m.courses[i] = course
			return nil
		}
	}
	m.courses = append(m.courses, course)
	return nil
}

func (m *memCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, c := range m.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCourseStore) List(ctx context.Context) ([]*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]*models.Course(nil), m.courses...), nil
}

func (m *memCourseStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, c := range m.courses {
		if c.ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSubjectStore struct {
	mu        sync.Mutex
	subjects  []*models.Subject
	relations []*models.SubjectCourse
	failWith  error
}

func (m *memSubjectStore) SaveWithCourses(ctx context.Context, subject *models.Subject, courseIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		// all-or-nothing: a failing save leaves no rows behind
		return m.failWith
	}
	m.subjects = append(m.subjects, subject)
	for _, courseID := range courseIDs {
		m.relations = append(m.relations, &models.SubjectCourse{
			ID:        identifier.New(),
			SubjectID: subject.ID,
			CourseID:  courseID,
		})
	}
	return nil
}

func (m *memSubjectStore) List(ctx context.Context) ([]*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Subject(nil), m.subjects...), nil
}

func (m *memSubjectStore) ListByCourseID(ctx context.Context, courseID string) ([]*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Subject
	for _, rel := range m.relations {
		if rel.CourseID != courseID {
			continue
		}
		for _, s := range m.subjects {
			if s.ID == rel.SubjectID {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (m *memSubjectStore) ListWithCourses(ctx context.Context) ([]*models.SubjectWithCourses, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.SubjectWithCourses
	for _, s := range m.subjects {
		entry := &models.SubjectWithCourses{Subject: s}
		for _, rel := range m.relations {
			if rel.SubjectID == s.ID {
				entry.Courses = append(entry.Courses, &models.Course{ID: rel.CourseID})
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

type memAvatarStore struct {
	mu       sync.Mutex
	avatars  []*models.Avatar
	failWith error
}

func (m *memAvatarStore) Insert(ctx context.Context, avatar *models.Avatar) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.avatars = append(m.avatars, avatar)
	return nil
}

func (m *memAvatarStore) GetByStudentID(ctx context.Context, studentID string) (*models.Avatar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.avatars {
		if a.StudentID == studentID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAvatarStore) List(ctx context.Context) ([]*models.Avatar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]*models.Avatar(nil), m.avatars...), nil
}

func (m *memAvatarStore) DeleteByStudentID(ctx context.Context, studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	var kept []*models.Avatar
	for _, a := range m.avatars {
		if a.StudentID != studentID {
			kept = append(kept, a)
		}
	}
	m.avatars = kept
	return nil
}
