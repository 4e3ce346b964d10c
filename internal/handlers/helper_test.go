package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/hacklog-app/hacklog/internal/handlers"
	"github.com/hacklog-app/hacklog/internal/memstore"
	"github.com/hacklog-app/hacklog/internal/middleware"
	"github.com/hacklog-app/hacklog/internal/models"
	"github.com/hacklog-app/hacklog/internal/server"
	"github.com/hacklog-app/hacklog/pkg/auth"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	store  *memstore.Store
	jwtMgr *auth.JWTManager
}

// newTestEnv wires the real route table against the in-memory store
// and a miniredis-backed revocation list.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jwtMgr := auth.NewJWTManager(testSecret, time.Hour)

	authH := handlers.NewAuthHandler(store, jwtMgr, rdb)
	projectH := handlers.NewProjectHandler(store)
	profileH := handlers.NewProfileHandler(store)

	router := gin.New()
	server.APIEndpoints(router, authH, projectH, profileH,
		middleware.AuthMiddleware(jwtMgr, rdb))

	return &testEnv{router: router, store: store, jwtMgr: jwtMgr}
}

// sessionFor seeds a user row and returns a valid session token for it.
func (e *testEnv) sessionFor(t *testing.T, userID string) string {
	t.Helper()
	_, err := e.store.UpsertUser(&models.User{ID: userID})
	require.NoError(t, err)
	token, err := e.jwtMgr.Generate(userID)
	require.NoError(t, err)
	return token
}

// identityToken signs a provider-style identity token.
func identityToken(t *testing.T, sub, email string) string {
	t.Helper()
	claims := auth.IdentityClaims{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) seedProject(t *testing.T, userID, title, day string) *models.Project {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	project := &models.Project{
		HackathonName: "HackMIT",
		ProjectTitle:  title,
		Description:   "a project",
		Date:          date,
	}
	require.NoError(t, e.store.CreateProject(userID, project))
	return project
}

func strPtr(s string) *string { return &s }
