package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply/server/config"
	"github.com/shoply/server/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", testSecret)
	config.Load()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newAuthTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(ctx *gin.Context) {
		id, _ := ctx.Get(ContextUserIDKey)
		email, _ := ctx.Get(ContextUserEmailKey)
		name, _ := ctx.Get(ContextUserNameKey)
		ctx.JSON(http.StatusOK, gin.H{"id": id, "email": email, "name": name})
	})
	return r
}

func doProtected(t *testing.T, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)
	return w
}

func TestAuthRequired_NoCookie(t *testing.T) {
	w := doProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthRequired_ValidToken(t *testing.T) {
	tok, err := utils.GenerateToken("user-1", "a@x.com", "A")
	require.NoError(t, err)

	w := doProtected(t, tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	claims := utils.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doProtected(t, tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	w := doProtected(t, "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}
