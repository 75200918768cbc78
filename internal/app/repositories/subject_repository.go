package repositories

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/db"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
	"github.com/lucasb/schoolhub/internal/pkg/dberrors"
	"github.com/lucasb/schoolhub/internal/pkg/identifier"
)

// SubjectRepository handles database operations for subjects and the
// subject_course join relation.
type SubjectRepository struct {
	database *db.PostgresDB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(database *db.PostgresDB) *SubjectRepository {
	return &SubjectRepository{
		database: database,
	}
}

// SaveWithCourses stores a subject and one join row per course inside a
// single transaction. A failure on any join insert aborts the whole save,
// so the subject row never outlives its links.
func (r *SubjectRepository) SaveWithCourses(ctx context.Context, subject *models.Subject, courseIDs []string) error {
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		subjectQuery := `
			INSERT INTO subject (id, code, name, program)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				code = excluded.code,
				name = excluded.name,
				program = excluded.program
		`

		if _, err := tx.Exec(ctx, subjectQuery, subject.ID, subject.Code, subject.Name, subject.Program); err != nil {
			return err
		}

		relationQuery := `
			INSERT INTO subject_course (id, subject_id, course_id)
			VALUES ($1, $2, $3)
		`

		for _, courseID := range courseIDs {
			if _, err := tx.Exec(ctx, relationQuery, identifier.New(), subject.ID, courseID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "subject_course_course_id_fkey") {
			return apperrors.NewReferenceNotFound("one of the linked courses does not exist")
		}
		return apperrors.NewStorageFailure("save subject with courses", err)
	}

	return nil
}

// List retrieves all subjects.
func (r *SubjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	query := `SELECT id, code, name, program FROM subject`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list subjects", err)
	}
	defer rows.Close()

	return scanSubjectRows(rows)
}

// ListByCourseID retrieves the subjects linked to a course through the
// join relation.
func (r *SubjectRepository) ListByCourseID(ctx context.Context, courseID string) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.code, s.name, s.program
		FROM subject s
		INNER JOIN subject_course sc ON sc.subject_id = s.id
		WHERE sc.course_id = $1
	`

	rows, err := r.database.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list subjects by course", err)
	}
	defer rows.Close()

	return scanSubjectRows(rows)
}

// ListWithCourses retrieves every subject together with its courses in one
// round trip: the store joins the three tables and aggregates each
// subject's courses into a JSON array that is decoded per result row.
func (r *SubjectRepository) ListWithCourses(ctx context.Context) ([]*models.SubjectWithCourses, error) {
	query := `
		SELECT
			s.id, s.code, s.name, s.program,
			json_agg(json_build_object('id', c.id, 'name', c.name)) AS courses
		FROM subject s
		INNER JOIN subject_course sc ON sc.subject_id = s.id
		INNER JOIN course c ON c.id = sc.course_id
		GROUP BY s.id
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list subjects with courses", err)
	}
	defer rows.Close()

	var result []*models.SubjectWithCourses
	for rows.Next() {
		var subject models.Subject
		var coursesJSON []byte
		if err := rows.Scan(&subject.ID, &subject.Code, &subject.Name, &subject.Program, &coursesJSON); err != nil {
			return nil, apperrors.NewStorageFailure("scan subject with courses row", err)
		}

		var courses []*models.Course
		if err := json.Unmarshal(coursesJSON, &courses); err != nil {
			return nil, apperrors.NewStorageFailure("decode aggregated courses", err)
		}

		result = append(result, &models.SubjectWithCourses{
			Subject: &subject,
			Courses: courses,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailure("iterate subject rows", err)
	}

	return result, nil
}

func scanSubjectRows(rows pgx.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Code, &subject.Name, &subject.Program); err != nil {
			return nil, apperrors.NewStorageFailure("scan subject row", err)
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailure("iterate subject rows", err)
	}

	return subjects, nil
}
