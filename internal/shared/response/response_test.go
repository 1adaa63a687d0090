package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, response.NewPaginationMeta(21, 1, 10).TotalPages)
	assert.Equal(t, 2, response.NewPaginationMeta(20, 1, 10).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(0, 1, 10).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paginated", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Paginated(c, []string{"a"}, 11, 2, 5)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":["a"],"meta":{"total":11,"totalPages":3,"page":2,"pageSize":5}}`, w.Body.String())
	})

	t.Run("abort", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Abort(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "slow down")

		assert.True(t, c.IsAborted())
		assert.JSONEq(t, `{"ok":false,"error":{"code":"TOO_MANY_REQUESTS","message":"slow down","details":null}}`, w.Body.String())
	})
}
