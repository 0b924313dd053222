package authController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/middleware"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store/memstore"
)

func setupRouter(t *testing.T) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memstore.New()
	r := gin.New()
	r.POST("/api/auth/login", Login(s))
	r.PUT("/api/auth", Logout(s))
	r.GET("/api/auth/me", middleware.RequireSession(s), Me(s))
	return r, s
}

func createUser(t *testing.T, s *memstore.Store, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, Name: "Test User", Password: string(hash), Role: models.RoleUser}
	require.NoError(t, s.CreateUser(&user))
	return user
}

func postJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r, s := setupRouter(t)
	user := createUser(t, s, "a@x.com", "secret")

	w := postJSON(r, http.MethodPost, "/api/auth/login", gin.H{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User["id"])

	// The hash must never be serialized.
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword)

	// A session record was appended.
	sess, err := s.GetSession(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	r, s := setupRouter(t)
	createUser(t, s, "a@x.com", "secret")

	w := postJSON(r, http.MethodPost, "/api/auth/login", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@x.com", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r, s := setupRouter(t)
	user := createUser(t, s, "a@x.com", "secret")

	sess := models.Session{Token: "tok-1", UserID: user.ID}
	require.NoError(t, s.CreateSession(&sess))

	w := postJSON(r, http.MethodPut, "/api/auth", gin.H{"token": "tok-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// getCurrentUser after logout is always unauthorized.
	me := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestLogoutIsIdempotent(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(r, http.MethodPut, "/api/auth", gin.H{"token": "never-issued"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestMeReturnsCurrentUser(t *testing.T) {
	r, s := setupRouter(t)
	user := createUser(t, s, "a@x.com", "secret")

	sess := models.Session{Token: "tok-1", UserID: user.ID}
	require.NoError(t, s.CreateSession(&sess))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID, body["id"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestMeUserDeletedAfterLogin(t *testing.T) {
	r, s := setupRouter(t)
	user := createUser(t, s, "a@x.com", "secret")

	sess := models.Session{Token: "tok-1", UserID: user.ID}
	require.NoError(t, s.CreateSession(&sess))
	require.NoError(t, s.DeleteUser(user.ID))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestMeWithoutToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
