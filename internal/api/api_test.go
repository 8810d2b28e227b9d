package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/mocks"
	"github.com/platefull/backend/internal/types"
)

const testToken = "test-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthMock returns a token validator that accepts testToken for the given
// user and rejects everything else.
func newAuthMock(userID uuid.UUID) *mocks.MockAuthService {
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", testToken).Return(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{},
		UserID:           userID,
		Username:         "tester",
	}, nil)
	return auth
}

func newTestRouter(register func(*gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")
	register(v1)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
