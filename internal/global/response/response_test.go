package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-activity-system/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	m.Run()
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpStatus(ErrInvalidRequest.Code))
	assert.Equal(t, http.StatusUnauthorized, httpStatus(ErrTokenInvalid.Code))
	assert.Equal(t, http.StatusUnauthorized, httpStatus(ErrInvalidPassword.Code))
	assert.Equal(t, http.StatusForbidden, httpStatus(ErrForbidden.Code))
	assert.Equal(t, http.StatusNotFound, httpStatus(ErrNotFound.Code))
	assert.Equal(t, http.StatusConflict, httpStatus(ErrAlreadyExists.Code))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(ErrStorage.Code))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(ErrInternal.Code))
}

func TestFail_SetsStatusAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, ErrNotFound.WithTips("活动不存在"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)

	stored, ok := c.Get(ErrorContextKey)
	require.True(t, ok)
	assert.Equal(t, ErrNotFound.Code, stored.(*Error).Code)
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"id": "abc"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":200`)
	assert.Contains(t, w.Body.String(), `"abc"`)
}

func TestErrorIs(t *testing.T) {
	derived := ErrNotFound.WithTips("x")
	assert.True(t, derived.Is(ErrNotFound))
	assert.False(t, derived.Is(ErrForbidden))
}
