package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	data := map[string]string{"message": "hello"}
	Success(c, data)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	data := map[string]string{"id": "123"}
	Created(c, data)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestError(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusTeapot, "I'm a teapot")

	assert.Equal(t, http.StatusTeapot, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "I'm a teapot", resp.Error)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		fn             func(*gin.Context)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "BadRequest",
			fn:             func(c *gin.Context) { BadRequest(c, "bad input") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "bad input",
		},
		{
			name:           "Unauthorized",
			fn:             func(c *gin.Context) { Unauthorized(c, "not authenticated") },
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "not authenticated",
		},
		{
			name:           "Forbidden",
			fn:             func(c *gin.Context) { Forbidden(c, "not allowed") },
			expectedStatus: http.StatusForbidden,
			expectedError:  "not allowed",
		},
		{
			name:           "NotFound",
			fn:             func(c *gin.Context) { NotFound(c, "missing") },
			expectedStatus: http.StatusNotFound,
			expectedError:  "missing",
		},
		{
			name:           "InternalError",
			fn:             func(c *gin.Context) { InternalError(c) },
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.fn(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp Response
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}
