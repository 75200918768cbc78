package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Upsert inserts a student or fully replaces an existing one with the same id.
func (r *StudentRepository) Upsert(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (id, first_name, last_name, course_id, language, email, operational_systems)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			course_id = excluded.course_id,
			language = excluded.language,
			email = excluded.email,
			operational_systems = excluded.operational_systems
	`

	_, err := r.db.Exec(ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.CourseID,
		student.Language,
		student.Email,
		student.OperationalSystems,
	)
	if err != nil {
		return apperrors.NewStorageFailure("upsert student", err)
	}

	return nil
}

// GetByID retrieves a student by ID. Returns (nil, nil) when no student exists.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, course_id, language, email, operational_systems
		FROM student
		WHERE id = $1
	`

	student, err := scanStudentRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageFailure("get student by id", err)
	}

	return student, nil
}

// List retrieves all students.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, course_id, language, email, operational_systems
		FROM student
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list students", err)
	}
	defer rows.Close()

	return scanStudentRows(rows)
}

// ListByCourseID retrieves all students enrolled in the given course.
func (r *StudentRepository) ListByCourseID(ctx context.Context, courseID string) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, course_id, language, email, operational_systems
		FROM student
		WHERE course_id = $1
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list students by course", err)
	}
	defer rows.Close()

	return scanStudentRows(rows)
}

// ListWithoutAvatar retrieves the students that do not have an avatar yet,
// via a store-side LEFT JOIN against the avatar table.
func (r *StudentRepository) ListWithoutAvatar(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.course_id, s.language, s.email, s.operational_systems
		FROM student s
		LEFT JOIN avatar a ON a.student_id = s.id
		WHERE a.id IS NULL
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list students without avatar", err)
	}
	defer rows.Close()

	return scanStudentRows(rows)
}

// Delete removes a student row. Deleting a missing id is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM student WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewStorageFailure("delete student", err)
	}

	return nil
}

func scanStudentRow(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.CourseID,
		&student.Language,
		&student.Email,
		&student.OperationalSystems,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func scanStudentRows(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudentRow(rows)
		if err != nil {
			return nil, apperrors.NewStorageFailure("scan student row", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailure("iterate student rows", err)
	}

	return students, nil
}
