// Package aggregation builds composite and grouped views by correlating
// entities in application code when a store-side join is impractical.
package aggregation

import (
	"context"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// GroupKey identifies one group a student falls into. Key partitions the
// groups; Name is what callers display for the bucket.
type GroupKey struct {
	Key  string
	Name string
}

// KeysFunc extracts the group keys for a student. Returning more than one
// key fans the student out into multiple groups.
type KeysFunc func(student *models.Student) ([]GroupKey, error)

// CourseResolver looks up a course by id. Returns (nil, nil) when the
// course does not exist.
type CourseResolver func(ctx context.Context, courseID string) (*models.Course, error)

// GroupStudents partitions students into groups using keysFor. Groups come
// back in no particular order, but students keep their input order within
// each group. Any keysFor error fails the whole aggregation.
func GroupStudents(students []*models.Student, keysFor KeysFunc) ([]*models.StudentGroup, error) {
	grouped := make(map[string]*models.StudentGroup)
	var order []string

	for _, student := range students {
		keys, err := keysFor(student)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			group, ok := grouped[key.Key]
			if !ok {
				group = &models.StudentGroup{Name: key.Name}
				grouped[key.Key] = group
				order = append(order, key.Key)
			}
			group.Students = append(group.Students, student)
			group.Total++
		}
	}

	groups := make([]*models.StudentGroup, 0, len(grouped))
	for _, key := range order {
		groups = append(groups, grouped[key])
	}

	return groups, nil
}

// ByLanguage groups students by their language, verbatim.
func ByLanguage() KeysFunc {
	return func(student *models.Student) ([]GroupKey, error) {
		return []GroupKey{{Key: student.Language, Name: student.Language}}, nil
	}
}

// ByOS groups students by operating system. A student with N systems lands
// in N groups, one membership per system.
func ByOS() KeysFunc {
	return func(student *models.Student) ([]GroupKey, error) {
		keys := make([]GroupKey, 0, len(student.OperationalSystems))
		for _, os := range student.OperationalSystems {
			keys = append(keys, GroupKey{Key: os, Name: os})
		}
		return keys, nil
	}
}

// ByCourse groups students by course, keyed on course id and named after
// the course's display name. Each distinct course is resolved once. A
// student pointing at a missing course is a data-integrity violation and
// fails the whole aggregation.
func ByCourse(ctx context.Context, resolve CourseResolver) KeysFunc {
	names := make(map[string]string)

	return func(student *models.Student) ([]GroupKey, error) {
		name, ok := names[student.CourseID]
		if !ok {
			course, err := resolve(ctx, student.CourseID)
			if err != nil {
				return nil, err
			}
			if course == nil {
				return nil, apperrors.NewDataIntegrity("student %s references missing course %s", student.ID, student.CourseID)
			}
			name = course.Name
			names[student.CourseID] = name
		}

		return []GroupKey{{Key: student.CourseID, Name: name}}, nil
	}
}
