package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappersMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, NewReferenceNotFound("course %s", "abc"), ErrReferenceNotFound)
	assert.ErrorIs(t, NewConstraintViolation("student already has an avatar"), ErrConstraintViolation)
	assert.ErrorIs(t, NewStorageFailure("insert student", errors.New("broken pipe")), ErrStorageFailure)
	assert.ErrorIs(t, NewDataIntegrity("course %s missing", "abc"), ErrDataIntegrity)
}

func TestWrappersKeepDetail(t *testing.T) {
	err := NewReferenceNotFound("course %s does not exist", "x1y2z3w4v5")
	assert.Contains(t, err.Error(), "x1y2z3w4v5")

	cause := errors.New("connection refused")
	err = NewStorageFailure("list students", cause)
	assert.Contains(t, err.Error(), "list students")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKind(t *testing.T) {
	assert.Equal(t, ErrConstraintViolation, Kind(NewConstraintViolation("blocked")))
	assert.Equal(t, ErrDataIntegrity, Kind(fmt.Errorf("outer: %w", NewDataIntegrity("gap"))))
	assert.Nil(t, Kind(errors.New("unrelated")))
	assert.Nil(t, Kind(nil))
}
