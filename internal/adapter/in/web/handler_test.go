package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"miniblog/internal/adapter/out/storage/snapshot"
	"miniblog/internal/service"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	mux   *http.ServeMux
	store *snapshot.Store
	posts *service.PostService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st := snapshot.New(filepath.Join(t.TempDir(), "data.json"))
	posts := service.NewPostService(st, st)

	h, err := NewHandler(posts)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Register(mux)
	return fixture{mux: mux, store: st, posts: posts}
}

func postForm(t *testing.T, mux *http.ServeMux, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPages_IndexEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := get(t, f.mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No posts yet")
}

func TestPages_IndexListsPosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.posts.SubmitPost(context.Background(), service.SubmitPostRequest{
		AuthorID: 1, Title: "Hello world", Content: "body",
	})
	require.NoError(t, err)

	rec := get(t, f.mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Hello world")
	require.Contains(t, rec.Body.String(), `href="/posts/1"`)
}

func TestPages_PostDetail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.posts.SubmitPost(context.Background(), service.SubmitPostRequest{
		AuthorID: 1, Title: "Title", Content: "the content",
	})
	require.NoError(t, err)

	rec := get(t, f.mux, "/posts/1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "the content")

	rec = get(t, f.mux, "/posts/99")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Post not found")
}

func TestPages_CreateForm(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := get(t, f.mux, "/create")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<form")
}

func TestPages_SubmitPost_CreatesPlaceholderAuthor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := postForm(t, f.mux, "/create", url.Values{
		"authorId": {"7"},
		"title":    {"From the form"},
		"content":  {"c"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	u, err := f.store.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "user7", *u.Login)

	p, err := f.store.GetPostByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(7), p.AuthorID)
	require.Equal(t, "From the form", *p.Title)
}

func TestPages_SubmitPost_DefaultsAuthorToOne(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := postForm(t, f.mux, "/create", url.Values{
		"title":   {"t"},
		"content": {"c"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	p, err := f.store.GetPostByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), p.AuthorID)
}

func TestPages_SubmitPost_MissingFields(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	rec := postForm(t, f.mux, "/create", url.Values{"title": {"t"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postForm(t, f.mux, "/create", url.Values{
		"authorId": {"zzz"},
		"title":    {"t"},
		"content":  {"c"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
