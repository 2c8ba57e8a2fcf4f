package inspectserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/routekit/svcconfig/internal/snapshot"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSnapshot(t *testing.T, text string) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Compile([]byte(text), "test")
	require.NoError(t, err)
	return snap
}

func doGET(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := New(testSnapshot(t, `{}`))
	w := doGET(t, srv.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestConfigView(t *testing.T) {
	t.Parallel()

	srv := New(testSnapshot(t, `{
		"loadBalancingPolicy": "round_robin",
		"methodConfig": [{"name": [{"service": "svc", "method": "Get"}, {"service": "svc"}]}]
	}`))
	w := doGET(t, srv.Handler(), "/config")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Policy string   `json:"loadBalancingPolicy"`
		Paths  []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "round_robin", resp.Policy)
	require.Equal(t, []string{"/svc/*", "/svc/Get"}, resp.Paths)
}

func TestConfigViewOmitsAbsentPolicy(t *testing.T) {
	t.Parallel()

	srv := New(testSnapshot(t, `{}`))
	w := doGET(t, srv.Handler(), "/config")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "loadBalancingPolicy")
}

func TestLookupRoute(t *testing.T) {
	t.Parallel()

	srv := New(testSnapshot(t, `{
		"methodConfig": [{"name": [{"service": "svc"}], "timeout": "3s"}]
	}`))
	h := srv.Handler()

	w := doGET(t, h, "/lookup?path=/svc/Anything")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"timeout": "3s"}`, w.Body.String())

	w = doGET(t, h, "/lookup?path=/other/Method")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doGET(t, h, "/lookup")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	t.Parallel()

	srv := New(testSnapshot(t, `{"methodConfig": [{"name": [{"service": "old"}]}]}`))
	h := srv.Handler()

	w := doGET(t, h, "/lookup?path=/old/M")
	require.Equal(t, http.StatusOK, w.Code)

	srv.Replace(testSnapshot(t, `{"methodConfig": [{"name": [{"service": "new"}]}]}`))

	w = doGET(t, h, "/lookup?path=/old/M")
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doGET(t, h, "/lookup?path=/new/M")
	require.Equal(t, http.StatusOK, w.Code)
}
