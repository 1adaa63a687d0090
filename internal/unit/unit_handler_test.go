package unit_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/unit"
	uniterrors "go-hrms/internal/unit/errors"
	unitMock "go-hrms/internal/unit/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc unit.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := unit.NewHandler(svc)
	r.POST("/units", h.Create)
	r.GET("/units", h.GetAll)
	r.PUT("/units/:id", h.Update)
	r.DELETE("/units/:id", h.Delete)
	return r
}

func TestUnitHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := unitMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), unit.UnitRequest{Name: "Finance"}).
			Return(unit.UnitResponse{ID: uuid.NewString(), Name: "Finance"}, nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/units", strings.NewReader(`{"name":"Finance"}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Finance"`)
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := unitMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/units", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := unitMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(unit.UnitResponse{}, uniterrors.ErrUnitNameTaken)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/units", strings.NewReader(`{"name":"Finance"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"name"`)
	})
}

func TestUnitHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := unitMock.NewMockService(ctrl)
	id := uuid.NewString()
	svc.EXPECT().Delete(gomock.Any(), id).Return(uniterrors.ErrUnitNotFound)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/units/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
