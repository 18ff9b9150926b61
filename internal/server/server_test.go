package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hassan-414/Backend-Blog-Project/internal/auth"
	"github.com/hassan-414/Backend-Blog-Project/internal/blogs"
	"github.com/hassan-414/Backend-Blog-Project/internal/comments"
	"github.com/hassan-414/Backend-Blog-Project/internal/config"
	"github.com/hassan-414/Backend-Blog-Project/internal/database"
	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

const testSecret = "test-secret"

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := database.Migrate(db, &users.User{}, &blogs.Blog{}, &comments.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{
		JWTSecret:  testSecret,
		TokenTTL:   168 * time.Hour,
		CORSOrigin: "http://localhost:3000",
	}
	return New(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, r *gin.Engine, username, email, password string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: code %d, body %s", email, w.Code, w.Body.String())
	}
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: code %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	m := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

func TestSignupLoginGetUser(t *testing.T) {
	r, _ := newTestEnv(t)

	signup(t, r, "ann", "ann@gmail.com", "secret1")
	token := login(t, r, "ann@gmail.com", "secret1")

	w := doJSON(t, r, http.MethodGet, "/user", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("get user: code %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["username"] != "ann" {
		t.Errorf("username = %v, want ann", body["username"])
	}
	if body["email"] != "ann@gmail.com" {
		t.Errorf("email = %v", body["email"])
	}
	if _, ok := body["password"]; ok {
		t.Error("response contains a password field")
	}
	if _, ok := body["passwordHash"]; ok {
		t.Error("response contains a password hash field")
	}
}

func TestSignupRejectsNonGmail(t *testing.T) {
	r, db := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "secret1",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code %d, want 400", w.Code)
	}

	var count int64
	db.Model(&users.User{}).Count(&count)
	if count != 0 {
		t.Errorf("user persisted after rejected signup")
	}
}

func TestSignupNormalizesAndDeduplicatesEmail(t *testing.T) {
	r, _ := newTestEnv(t)

	signup(t, r, "ann", "Ann@Gmail.Com", "secret1")

	// Same address, different case: already registered.
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"username": "ann2",
		"email":    "ann@gmail.com",
		"password": "secret1",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: code %d, want 400", w.Code)
	}

	// Stored lowercase, so the lowercase form logs in.
	login(t, r, "ann@gmail.com", "secret1")
}

func TestLoginErrorShapeIdentical(t *testing.T) {
	r, _ := newTestEnv(t)
	signup(t, r, "ann", "ann@gmail.com", "secret1")

	wrongPw := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "ann@gmail.com", "password": "nope123",
	}, "")
	unknown := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "ghost@gmail.com", "password": "secret1",
	}, "")

	if wrongPw.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("codes %d/%d, want 401/401", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Errorf("error bodies differ: %q vs %q", wrongPw.Body.String(), unknown.Body.String())
	}
}

func TestLoginSetsCookie(t *testing.T) {
	r, _ := newTestEnv(t)
	signup(t, r, "ann", "ann@gmail.com", "secret1")

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "ann@gmail.com", "password": "secret1",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: code %d", w.Code)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("token cookie not set")
	}
	if cookie.Value == "" {
		t.Error("empty cookie value")
	}
	if !cookie.HttpOnly {
		t.Error("cookie not httpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("cookie SameSite = %v, want Strict", cookie.SameSite)
	}
	if cookie.MaxAge != 7*24*60*60 {
		t.Errorf("cookie MaxAge = %d, want 7 days", cookie.MaxAge)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/logout", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout: code %d", w.Code)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			if c.MaxAge >= 0 {
				t.Errorf("cookie MaxAge = %d, want negative", c.MaxAge)
			}
			return
		}
	}
	t.Fatal("logout did not touch the token cookie")
}

func TestAuthGate(t *testing.T) {
	r, _ := newTestEnv(t)

	// No token at all.
	w := doJSON(t, r, http.MethodGet, "/user", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: code %d, want 401", w.Code)
	}

	// Garbage token.
	w = doJSON(t, r, http.MethodGet, "/user", nil, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: code %d, want 401", w.Code)
	}
	garbageMsg := decodeBody(t, w)["message"]

	// Expired token signed with the right secret.
	expired, err := auth.NewTokenService(testSecret, -time.Hour).
		Issue(&users.User{ID: 1, Email: "ann@gmail.com", Username: "ann"})
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	w = doJSON(t, r, http.MethodGet, "/user", nil, expired)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: code %d, want 401", w.Code)
	}
	expiredMsg := decodeBody(t, w)["message"]

	if garbageMsg == expiredMsg {
		t.Errorf("expired and invalid tokens produce the same message %q", garbageMsg)
	}
}

func TestCookieTakesPrecedenceOverHeader(t *testing.T) {
	r, _ := newTestEnv(t)
	signup(t, r, "ann", "ann@gmail.com", "secret1")
	token := login(t, r, "ann@gmail.com", "secret1")

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code %d, want 200 (valid cookie should win)", w.Code)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	r, _ := newTestEnv(t)
	signup(t, r, "ann", "ann@gmail.com", "secret1")
	token := login(t, r, "ann@gmail.com", "secret1")

	w := doJSON(t, r, http.MethodPut, "/user/update", gin.H{
		"firstName": "Ann",
		"age":       30,
		"gender":    "Female",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: code %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/user/update", gin.H{"city": "Lahore"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second update: code %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/user", nil, token)
	body := decodeBody(t, w)
	if body["firstName"] != "Ann" {
		t.Errorf("firstName = %v, earlier field lost by partial update", body["firstName"])
	}
	if body["city"] != "Lahore" {
		t.Errorf("city = %v", body["city"])
	}

	// Out-of-range age is a validation error.
	w = doJSON(t, r, http.MethodPut, "/user/update", gin.H{"age": 300}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("age 300: code %d, want 400", w.Code)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	r, _ := newTestEnv(t)
	signup(t, r, "ann", "ann@gmail.com", "secret1")
	token := login(t, r, "ann@gmail.com", "secret1")

	w := doJSON(t, r, http.MethodGet, "/user/verify", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: code %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	user, _ := body["user"].(map[string]any)
	if user == nil || user["username"] != "ann" {
		t.Errorf("user = %v", body["user"])
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/nope", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("code %d, want 404", w.Code)
	}
	if decodeBody(t, w)["message"] != "Route not found" {
		t.Errorf("body %s", w.Body.String())
	}
}
