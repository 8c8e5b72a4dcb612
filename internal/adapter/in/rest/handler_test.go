package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"miniblog/internal/adapter/out/storage/snapshot"
	"miniblog/internal/service"

	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	st := snapshot.New(filepath.Join(t.TempDir(), "data.json"))
	users := service.NewUserService(st)
	posts := service.NewPostService(st, st)

	mux := http.NewServeMux()
	NewHandler(users, posts).Register(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestAPI_UserPostLifecycle(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/users", `{"email":"a@x.com","login":"a","password":"p"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeMap(t, rec)
	require.EqualValues(t, 1, user["id"])
	require.Equal(t, "a@x.com", user["email"])
	require.Equal(t, "a", user["login"])

	rec = do(t, mux, http.MethodPost, "/api/posts", `{"authorId":1,"title":"T","content":"C"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	post := decodeMap(t, rec)
	require.EqualValues(t, 1, post["id"])
	require.EqualValues(t, 1, post["authorId"])
	require.Equal(t, "T", post["title"])
	require.Equal(t, "C", post["content"])

	rec = do(t, mux, http.MethodDelete, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User deleted", decodeMap(t, rec)["message"])

	// Cascade: the user's posts are gone.
	rec = do(t, mux, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Empty(t, posts)

	rec = do(t, mux, http.MethodPost, "/api/posts", `{"authorId":99,"title":"T","content":"C"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Author not found", decodeMap(t, rec)["error"])
}

func TestAPI_BadBody(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "not json"},
		{name: "empty object", body: "{}"},
		{name: "array", body: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/api/users", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, msgNoBody, decodeMap(t, rec)["error"])
		})
	}
}

func TestAPI_CreateUser_MissingFieldsAreNull(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/users", `{"login":"only"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeMap(t, rec)
	require.Equal(t, "only", user["login"])
	require.Nil(t, user["email"])
	require.Nil(t, user["password"])
}

func TestAPI_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/users/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, msgUserNotFound, decodeMap(t, rec)["error"])
}

func TestAPI_UpdateUser(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/users", `{"email":"a@x.com","login":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, mux, http.MethodPut, "/api/users/1", `{"login":"renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeMap(t, rec)
	require.EqualValues(t, 1, user["id"])
	require.Equal(t, "renamed", user["login"])
	require.Equal(t, "a@x.com", user["email"], "unsupplied fields survive the merge")

	// Unknown id answers 404 even with a broken body.
	rec = do(t, mux, http.MethodPut, "/api/users/9", "not json")
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Known id with a broken body answers 400.
	rec = do(t, mux, http.MethodPut, "/api/users/1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_PostCRUD(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	do(t, mux, http.MethodPost, "/api/users", `{"login":"a"}`)
	rec := do(t, mux, http.MethodPost, "/api/posts", `{"authorId":1,"title":"T","content":"C"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "T", decodeMap(t, rec)["title"])

	rec = do(t, mux, http.MethodPut, "/api/posts/1", `{"title":"T2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	post := decodeMap(t, rec)
	require.Equal(t, "T2", post["title"])
	require.Equal(t, "C", post["content"])

	rec = do(t, mux, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Post deleted", decodeMap(t, rec)["message"])

	rec = do(t, mux, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, msgPostNotFound, decodeMap(t, rec)["error"])
}

func TestAPI_Health(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	do(t, mux, http.MethodPost, "/api/users", `{"login":"a"}`)
	do(t, mux, http.MethodPost, "/api/users", `{"login":"b"}`)
	do(t, mux, http.MethodPost, "/api/posts", `{"authorId":1,"title":"T"}`)

	rec := do(t, mux, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeMap(t, rec)
	require.Equal(t, "healthy", health["status"])
	require.EqualValues(t, 2, health["users"])
	require.EqualValues(t, 1, health["posts"])
}
