package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasb/schoolhub/internal/app/models/dto"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
)

func handleOnRecorder(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, &body
}

func TestHandleAPIError_ReferenceNotFound(t *testing.T) {
	w, body := handleOnRecorder(t, apperrors.NewReferenceNotFound("course %s does not exist", "m1"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeReferenceNotFound, body.Error.Code)
	assert.Contains(t, body.Error.Message, "m1")
}

func TestHandleAPIError_ConstraintViolation(t *testing.T) {
	w, body := handleOnRecorder(t, apperrors.NewConstraintViolation("course has enrolled students"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeConstraintViolation, body.Error.Code)
}

func TestHandleAPIError_ServerSideErrorsAreOpaque(t *testing.T) {
	w, body := handleOnRecorder(t, apperrors.NewStorageFailure("upsert student", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeStorageFailure, body.Error.Code)
	// internal detail never leaks to the client
	assert.NotContains(t, body.Error.Message, "connection refused")

	w, body = handleOnRecorder(t, apperrors.NewDataIntegrity("student s1 references missing course ghost"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeDataIntegrity, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "s1")
}

func TestHandleAPIError_UnknownError(t *testing.T) {
	w, body := handleOnRecorder(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
}
