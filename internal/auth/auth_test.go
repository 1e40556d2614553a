package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boardshelf/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "hunter22"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrBadPassword)
	assert.ErrorIs(t, CheckPassword("", "hunter22"), ErrBadPassword)
}

func newRouter(enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(OwnerMiddleware("s3cret", enabled))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestOwnerMiddleware(t *testing.T) {
	token, err := jwt.GenerateToken("s3cret")
	require.NoError(t, err)

	cases := []struct {
		name    string
		enabled bool
		header  string
		want    int
	}{
		{"disabled", false, "", http.StatusNoContent},
		{"missing header", true, "", http.StatusUnauthorized},
		{"wrong scheme", true, "Basic abc", http.StatusUnauthorized},
		{"bad token", true, "Bearer nope", http.StatusUnauthorized},
		{"valid", true, "Bearer " + token, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newRouter(tc.enabled).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
