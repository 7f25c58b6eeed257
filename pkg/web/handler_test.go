package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestGetRendersDefaultPage(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Параметры триангуляции Делоне")
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, "<pre>")
	assert.Contains(t, body, "[inc]")
}

func TestPostUsesAlgorithm(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, postForm(url.Values{
		"width":     {"300"},
		"height":    {"200"},
		"points":    {"20"},
		"algorithm": {"divide-and-conquer"},
		"random":    {"true"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "[dc]")
}

func TestPostRejectsBadInput(t *testing.T) {
	cases := map[string]url.Values{
		"not a number":      {"points": {"many"}},
		"too many":          {"points": {"100000"}},
		"unknown algorithm": {"algorithm": {"quickhull"}},
		"brute force limit": {"algorithm": {"brute-force"}, "points": {"300"}},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(nil).ServeHTTP(rec, postForm(values))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOtherPathsAndMethods(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestParseParamsDefaults(t *testing.T) {
	p, err := parseParams(postForm(url.Values{}))
	require.NoError(t, err)
	assert.Equal(t, delaunay.Incremental, p.algorithm)
	assert.False(t, p.random)
	assert.Equal(t, 12, p.points)
}

func TestServer(t *testing.T) {
	srv := Server(":0", nil)
	assert.Equal(t, ":0", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseParamsErrors(t *testing.T) {
	_, err := parseParams(postForm(url.Values{"points": {"many"}}))
	require.Error(t, err)
	assert.Equal(t, `points: "many" is not a number`, err.Error())

	_, err = parseParams(postForm(url.Values{"width": {"0"}}))
	require.Error(t, err)
	assert.Equal(t, "width must be in [1, 5000], got 0", err.Error())

	_, err = parseParams(postForm(url.Values{"algorithm": {"bf"}, "points": {"121"}}))
	require.Error(t, err)
	assert.Equal(t, "brute force is limited to 120 points", err.Error())
}
