package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Upsert inserts a course or renames an existing one with the same id.
func (r *CourseRepository) Upsert(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name
	`

	_, err := r.db.Exec(ctx, query, course.ID, course.Name)
	if err != nil {
		return apperrors.NewStorageFailure("upsert course", err)
	}

	return nil
}

// GetByID retrieves a course by ID. Returns (nil, nil) when no course exists.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT id, name FROM course WHERE id = $1`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&course.ID, &course.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageFailure("get course by id", err)
	}

	return &course, nil
}

// List retrieves all courses.
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT id, name FROM course`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list courses", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			return nil, apperrors.NewStorageFailure("scan course row", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailure("iterate course rows", err)
	}

	return courses, nil
}

// Delete removes a course row. The enrolled-students check belongs to the
// service layer; this only talks to the store.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM course WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewStorageFailure("delete course", err)
	}

	return nil
}
