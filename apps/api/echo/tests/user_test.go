package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

func Test_userApi_login(t *testing.T) {
	t.Run("demo password", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/auth/login", []byte(`{"email": "Jane.Doe@School.org", "password": "demo"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp echoapi.LoginResponse
		decode(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		// the email is kept as typed
		assert.Equal(t, user.User{ID: 1, Username: "Jane.Doe", Email: "Jane.Doe@School.org", Role: user.RoleStudent, CoinBalance: 150}, resp.User)

		// the issued token identifies the user on /users/me
		tt := httpTest{path: "/api/users/me", token: resp.Token, wantCode: http.StatusOK, wantData: marchallObj(t, resp.User)}
		req, rec = newAuthRequest(http.MethodGet, tt.path, tt.token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	tests := []httpTest{
		{
			name: "wrong password", method: http.MethodPost, path: "/api/auth/login",
			body:     []byte(`{"email": "jane@school.org", "password": "secret"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials. In demo mode, use any email with password 'demo'"}),
		},
		{
			name: "invalid email", method: http.MethodPost, path: "/api/auth/login",
			body:     []byte(`{"email": "jane", "password": "demo"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "email must be a valid email address"}),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/api/auth/login", body: []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "this field is required", "password": "this field is required"}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_userApi_register(t *testing.T) {
	tests := []httpTest{
		{
			name: "register", method: http.MethodPost, path: "/api/auth/register",
			body:     []byte(`{"username": "jane", "email": "jane@school.org", "password": "pass", "role": "Teacher"}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, user.RegisterResult{Success: true, UserID: core.AckID, Message: "Registration successful"}),
		},
		{
			name: "invalid role", method: http.MethodPost, path: "/api/auth/register",
			body:     []byte(`{"username": "jane", "email": "jane@school.org", "password": "pass", "role": "admin"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"role": "must be one of: student, teacher"}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_userApi_me(t *testing.T) {
	users, err := db.Users.QueryAllUsers(context.Background())
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	teacher := users[1]

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{ExpiresAt: 1}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []httpTest{
		{name: "anonymous gets the first user", path: "/api/users/me", wantData: marchallObj(t, users[0])},
		{name: "token user", path: "/api/users/me", token: getToken(t, teacher), wantData: marchallObj(t, teacher)},
		{name: "bad token", path: "/api/users/me", token: "not-a-jwt", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errInvalidToken)},
		{name: "expired token", path: "/api/users/me", token: expired, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errInvalidToken)},
	}
	runHTTPTests(t, tests)
}

func Test_userApi_query(t *testing.T) {
	users, err := db.Users.QueryAllUsers(context.Background())
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}

	tests := []httpTest{
		{name: "list", path: "/api/users", wantData: marchallList(t, users[0], users[1])},
		{name: "retrieve", path: "/api/users/2", wantData: marchallObj(t, users[1])},
		{name: "me is not an id", path: "/api/users/me", wantData: marchallObj(t, users[0])},
		{
			name: "retrieve unknown", path: "/api/users/9", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "user not found"}),
		},
		{name: "retrieve non-int id", path: "/api/users/lol", wantCode: http.StatusNotFound},
	}
	runHTTPTests(t, tests)
}
