package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, wantCustomerID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := utils.GetCustomerIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantCustomerID, customerID)
		w.WriteHeader(http.StatusOK)
	})
}

func bearerToken(t *testing.T, role string, customerID uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(testSecret, customerID, role, 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := middleware.Auth(testSecret, zap.NewNop())(protectedHandler(t, uuid.Nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler := middleware.Auth(testSecret, zap.NewNop())(protectedHandler(t, uuid.Nil))

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_BadSignature(t *testing.T) {
	handler := middleware.Auth(testSecret, zap.NewNop())(protectedHandler(t, uuid.Nil))

	token, err := utils.GenerateAccessToken("other-secret", uuid.New(), "customer", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	customerID := uuid.New()
	handler := middleware.Auth(testSecret, zap.NewNop())(protectedHandler(t, customerID))

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.Header.Set("Authorization", bearerToken(t, "customer", customerID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_CustomerRoleForbidden(t *testing.T) {
	customerID := uuid.New()
	chain := middleware.Auth(testSecret, zap.NewNop())(
		middleware.Admin(zap.NewNop())(protectedHandler(t, customerID)),
	)

	req := httptest.NewRequest(http.MethodPost, "/plays", nil)
	req.Header.Set("Authorization", bearerToken(t, string(entity.RoleCustomer), customerID))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdmin_AdminRolePasses(t *testing.T) {
	customerID := uuid.New()
	chain := middleware.Auth(testSecret, zap.NewNop())(
		middleware.Admin(zap.NewNop())(protectedHandler(t, customerID)),
	)

	req := httptest.NewRequest(http.MethodPost, "/plays", nil)
	req.Header.Set("Authorization", bearerToken(t, string(entity.RoleAdmin), customerID))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_WithoutAuthUnauthorized(t *testing.T) {
	handler := middleware.Admin(zap.NewNop())(protectedHandler(t, uuid.Nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plays", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
