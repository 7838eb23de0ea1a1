package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTokenFinder struct {
	tokens map[string]*model.AccessToken
}

func (f *fakeTokenFinder) FindValid(tokenString string, now time.Time) (*model.AccessToken, error) {
	token, ok := f.tokens[tokenString]
	if !ok || token.IsExpired(now) {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

type fakeRevocationList struct {
	revoked map[string]bool
}

func (f *fakeRevocationList) Revoke(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *fakeTokenFinder, *fakeRevocationList) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	finder := &fakeTokenFinder{tokens: make(map[string]*model.AccessToken)}
	revocation := &fakeRevocationList{revoked: make(map[string]bool)}

	router := gin.New()
	router.Use(AuthMiddleware(finder, revocation))
	router.GET("/protected", func(c *gin.Context) {
		accountID, _ := c.Get("account_id")
		c.JSON(http.StatusOK, gin.H{"account_id": accountID})
	})
	return router, finder, revocation
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router, finder, revocation := newAuthTestRouter(t)

	accountID := uuid.New()
	finder.tokens["good-token"] = &model.AccessToken{
		AccountID: accountID,
		Token:     "good-token",
		Expires:   time.Now().Add(time.Hour),
		Account:   model.Account{ID: accountID, Username: "maria.gonzales"},
	}
	finder.tokens["expired-token"] = &model.AccessToken{
		AccountID: accountID,
		Token:     "expired-token",
		Expires:   time.Now().Add(-time.Minute),
	}

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(router, "good-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(router, "Token good-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		w := doRequest(router, "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		w := doRequest(router, "Bearer expired-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, revocation.Revoke(context.Background(), "good-token", time.Hour))
		w := doRequest(router, "Bearer good-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		delete(revocation.revoked, "good-token")
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		w := doRequest(router, "Bearer good-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), accountID.String())
	})

	t.Run("bearer keyword is case-insensitive", func(t *testing.T) {
		w := doRequest(router, "bearer good-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
