package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

// AvatarRepository handles database operations for avatars
type AvatarRepository struct {
	db *pgxpool.Pool
}

// NewAvatarRepository creates a new avatar repository
func NewAvatarRepository(db *pgxpool.Pool) *AvatarRepository {
	return &AvatarRepository{
		db: db,
	}
}

// Insert stores a new avatar.
func (r *AvatarRepository) Insert(ctx context.Context, avatar *models.Avatar) error {
	query := `
		INSERT INTO avatar (id, student_id, fantasy_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, avatar.ID, avatar.StudentID, avatar.FantasyName)
	if err != nil {
		return apperrors.NewStorageFailure("insert avatar", err)
	}

	return nil
}

// GetByStudentID retrieves the avatar owned by a student.
// Returns (nil, nil) when the student has none.
func (r *AvatarRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Avatar, error) {
	query := `
		SELECT id, student_id, fantasy_name
		FROM avatar
		WHERE student_id = $1
	`

	var avatar models.Avatar
	err := r.db.QueryRow(ctx, query, studentID).Scan(&avatar.ID, &avatar.StudentID, &avatar.FantasyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageFailure("get avatar by student id", err)
	}

	return &avatar, nil
}

// List retrieves all avatars.
func (r *AvatarRepository) List(ctx context.Context) ([]*models.Avatar, error) {
	query := `SELECT id, student_id, fantasy_name FROM avatar`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageFailure("list avatars", err)
	}
	defer rows.Close()

	var avatars []*models.Avatar
	for rows.Next() {
		var avatar models.Avatar
		if err := rows.Scan(&avatar.ID, &avatar.StudentID, &avatar.FantasyName); err != nil {
			return nil, apperrors.NewStorageFailure("scan avatar row", err)
		}
		avatars = append(avatars, &avatar)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageFailure("iterate avatar rows", err)
	}

	return avatars, nil
}

// DeleteByStudentID removes the avatar rows pointing at a student, used
// when the student itself is deleted.
func (r *AvatarRepository) DeleteByStudentID(ctx context.Context, studentID string) error {
	query := `DELETE FROM avatar WHERE student_id = $1`

	_, err := r.db.Exec(ctx, query, studentID)
	if err != nil {
		return apperrors.NewStorageFailure("delete avatar by student id", err)
	}

	return nil
}
