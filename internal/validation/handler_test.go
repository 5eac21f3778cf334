package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pras75299/gymapp/internal/pass"
	"github.com/pras75299/gymapp/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupValidateRouter(passes pass.Service, limiter ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := newTestService(passes, time.Now())
	handler := NewHandler(service, limiter)

	router := gin.New()
	router.GET("/api/validate", handler.RateLimit(), handler.Validate)
	return router
}

func doValidate(router *gin.Engine, passID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/api/validate?pass_id="+passID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint(t *testing.T) {
	passes := new(MockPassService)
	router := setupValidateRouter(passes, ratelimit.NewMemoryLimiter(100, time.Minute))

	passID := uuid.NewString()
	passes.On("GetDetails", mock.Anything, passID).Return(paidDetails(passID, time.Now()), nil)

	w := doValidate(router, passID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}

func TestValidateEndpoint_NotFound(t *testing.T) {
	passes := new(MockPassService)
	router := setupValidateRouter(passes, ratelimit.NewMemoryLimiter(100, time.Minute))

	passID := uuid.NewString()
	passes.On("GetDetails", mock.Anything, passID).Return(nil, pass.ErrPassNotFound)

	w := doValidate(router, passID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateEndpoint_BadInput(t *testing.T) {
	passes := new(MockPassService)
	router := setupValidateRouter(passes, ratelimit.NewMemoryLimiter(100, time.Minute))

	w := doValidate(router, "garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint_RateLimited(t *testing.T) {
	passes := new(MockPassService)
	router := setupValidateRouter(passes, ratelimit.NewMemoryLimiter(3, time.Minute))

	passID := uuid.NewString()
	passes.On("GetDetails", mock.Anything, passID).Return(paidDetails(passID, time.Now()), nil)

	for i := 0; i < 3; i++ {
		w := doValidate(router, passID)
		assert.Equal(t, http.StatusOK, w.Code, "request %d inside the window", i+1)
	}

	w := doValidate(router, passID)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
